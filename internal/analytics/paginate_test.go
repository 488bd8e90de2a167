package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DakaCamp/internal/model"
)

func TestPaginateEmptySet(t *testing.T) {
	result := Paginate(nil, 1, 10)

	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 0, result.TotalCount)
	assert.Empty(t, result.Items)
}

func TestPaginateSplitsPages(t *testing.T) {
	var events []Event
	for i := 0; i < 25; i++ {
		events = append(events, testEvent(int64(i+1), 1, i, model.CategoryDaily))
	}

	page1 := Paginate(events, 1, 10)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 25, page1.TotalCount)
	require.Len(t, page1.Items, 10)

	// 倒序：最新提交的排最前
	assert.Equal(t, int64(25), page1.Items[0].ID)
	assert.Equal(t, int64(16), page1.Items[9].ID)

	page3 := Paginate(events, 3, 10)
	require.Len(t, page3.Items, 5)
	assert.Equal(t, int64(1), page3.Items[4].ID)

	// 越界页码返回空 items，不报错
	page4 := Paginate(events, 4, 10)
	assert.Empty(t, page4.Items)
	assert.Equal(t, 3, page4.TotalPages)
	assert.Equal(t, 25, page4.TotalCount)
}

// 输入顺序不重要，分页自己重排
func TestPaginateSortsRegardlessOfInputOrder(t *testing.T) {
	events := []Event{
		testEvent(1, 1, 3, model.CategoryDaily),
		testEvent(2, 1, 7, model.CategoryDaily),
		testEvent(3, 1, 1, model.CategoryDaily),
	}

	result := Paginate(events, 1, 10)

	require.Len(t, result.Items, 3)
	assert.Equal(t, int64(2), result.Items[0].ID)
	assert.Equal(t, int64(1), result.Items[1].ID)
	assert.Equal(t, int64(3), result.Items[2].ID)
}

func TestPaginateClampsBadParams(t *testing.T) {
	events := []Event{testEvent(1, 1, 0, model.CategoryDaily)}

	result := Paginate(events, 0, 0)

	assert.Equal(t, 1, result.Page)
	require.Len(t, result.Items, 1)
}

func TestPaginateDoesNotMutateInput(t *testing.T) {
	events := []Event{
		testEvent(1, 1, 0, model.CategoryDaily),
		testEvent(2, 1, 2, model.CategoryDaily),
	}
	first := events[0].ID

	_ = Paginate(events, 1, 1)
	assert.Equal(t, first, events[0].ID)
}
