package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DakaCamp/internal/model"
)

func TestToExportRowsPreservesOrderAndCount(t *testing.T) {
	events := []Event{
		testEvent(1, 1, 2, model.CategoryStudy),
		testEvent(2, 2, 0, model.CategoryDaily),
		testEvent(3, 1, 1, model.CategoryWork),
	}
	events[1].UserDisplayName = "用户B"
	events[1].UserEmail = "b@example.com"

	rows := ToExportRows(events)

	require.Len(t, rows, len(events))
	assert.Equal(t, "用户A", rows[0].DisplayName)
	assert.Equal(t, "用户B", rows[1].DisplayName)
	assert.Equal(t, "b@example.com", rows[1].Email)
	assert.Equal(t, "study", rows[0].Category)
	assert.Equal(t, "work", rows[2].Category)
}

func TestToExportRowsFormatsTimestamps(t *testing.T) {
	e := testEvent(1, 1, 0, model.CategoryDaily)
	e.SubmittedAt = time.Date(2025, 6, 1, 9, 5, 3, 0, time.UTC)
	e.EventDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := ToExportRows([]Event{e})

	require.Len(t, rows, 1)
	assert.Equal(t, "2025-06-01", rows[0].EventDate)
	assert.Equal(t, "2025-06-01 09:05:03", rows[0].SubmittedAt)
}

func TestToExportRowsEmptyAndBroken(t *testing.T) {
	assert.Empty(t, ToExportRows(nil))

	broken := testEvent(1, 1, 0, model.CategoryDaily)
	broken.EventDate = time.Time{}
	broken.SubmittedAt = time.Time{}

	rows := ToExportRows([]Event{broken})
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].EventDate)
	assert.Empty(t, rows[0].SubmittedAt)
}
