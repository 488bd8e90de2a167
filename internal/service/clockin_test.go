package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "DakaCamp/pkg/errors"
)

func TestValidateClockInPayload(t *testing.T) {
	content, err := validateClockInPayload("  今天跑了五公里  ", []string{"a.jpg", "b.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "今天跑了五公里", content)
}

func TestValidateClockInPayloadRequiresContent(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := validateClockInPayload(raw, nil)
		assert.ErrorIs(t, err, pkgerrors.ClockInContentRequired)
	}
}

func TestValidateClockInPayloadCapsImages(t *testing.T) {
	images := make([]string, maxImages+1)
	for i := range images {
		images[i] = "img.jpg"
	}
	_, err := validateClockInPayload("内容", images)
	assert.ErrorIs(t, err, pkgerrors.ClockInTooManyImages)

	_, err = validateClockInPayload("内容", images[:maxImages])
	assert.NoError(t, err)
}
