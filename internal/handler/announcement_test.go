package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLimitDefaultsWhenAbsent(t *testing.T) {
	limit, ok := listLimit("", 3)
	require.True(t, ok)
	assert.Equal(t, 3, limit)
}

func TestListLimitParsesExplicitValue(t *testing.T) {
	limit, ok := listLimit("5", 3)
	require.True(t, ok)
	assert.Equal(t, 5, limit)

	// 显式传 0 表示不截断，不落回缺省值
	limit, ok = listLimit("0", 3)
	require.True(t, ok)
	assert.Equal(t, 0, limit)
}

func TestListLimitRejectsBadValue(t *testing.T) {
	for _, raw := range []string{"-1", "abc", "1.5"} {
		_, ok := listLimit(raw, 3)
		assert.False(t, ok)
	}
}
