package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DakaCamp/internal/model"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// testEvent 构造一条测试事件，day 是相对 testBase 的天偏移
func testEvent(id, userID int64, day int, category model.ClockInCategory) Event {
	at := testBase.AddDate(0, 0, day)
	return Event{
		ID:              id,
		UserID:          userID,
		UserDisplayName: "用户A",
		UserEmail:       "a@example.com",
		Content:         "今日打卡",
		Category:        category,
		EventDate:       at,
		SubmittedAt:     at,
	}
}

func TestFilterByTimeWindow(t *testing.T) {
	now := testBase.AddDate(0, 0, 40)
	events := []Event{
		testEvent(1, 1, 40, model.CategoryDaily), // 今天
		testEvent(2, 1, 35, model.CategoryDaily), // 5 天前
		testEvent(3, 1, 20, model.CategoryDaily), // 20 天前
		testEvent(4, 1, 0, model.CategoryDaily),  // 40 天前
	}

	got := Filter(events, Criteria{Window: Window7Days, Category: CategoryAll}, now)
	require.Len(t, got, 2)

	got = Filter(events, Criteria{Window: Window30Days, Category: CategoryAll}, now)
	require.Len(t, got, 3)

	got = Filter(events, Criteria{Window: WindowAll, Category: CategoryAll}, now)
	require.Len(t, got, 4)
}

func TestFilterWindowBoundsInclusive(t *testing.T) {
	now := testBase
	exactlySevenDaysAgo := Event{ID: 1, UserID: 1, SubmittedAt: now.AddDate(0, 0, -7), EventDate: now.AddDate(0, 0, -7)}
	justBeyond := Event{ID: 2, UserID: 1, SubmittedAt: now.AddDate(0, 0, -7).Add(-time.Second), EventDate: now}
	atNow := Event{ID: 3, UserID: 1, SubmittedAt: now, EventDate: now}
	future := Event{ID: 4, UserID: 1, SubmittedAt: now.Add(time.Hour), EventDate: now}

	got := Filter([]Event{exactlySevenDaysAgo, justBeyond, atNow, future},
		Criteria{Window: Window7Days, Category: CategoryAll}, now)

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestFilterByCategoryAndUser(t *testing.T) {
	now := testBase.AddDate(0, 0, 3)
	events := []Event{
		testEvent(1, 1, 0, model.CategoryStudy),
		testEvent(2, 1, 1, model.CategoryExercise),
		testEvent(3, 2, 1, model.CategoryStudy),
		testEvent(4, 2, 2, model.CategoryDaily),
	}

	got := Filter(events, Criteria{Window: WindowAll, Category: "study"}, now)
	require.Len(t, got, 2)

	got = Filter(events, Criteria{Window: WindowAll, Category: "study", UserID: 2}, now)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)

	got = Filter(events, Criteria{Window: WindowAll, Category: CategoryAll, UserID: 1}, now)
	require.Len(t, got, 2)
}

// 未知类型在聚合口径下按日常计
func TestFilterUnknownCategoryCountsAsDaily(t *testing.T) {
	now := testBase.AddDate(0, 0, 1)
	events := []Event{
		testEvent(1, 1, 0, model.CategoryDaily),
		testEvent(2, 1, 0, model.ClockInCategory("misc")),
		testEvent(3, 1, 0, ""),
	}

	got := Filter(events, Criteria{Window: WindowAll, Category: "daily"}, now)
	assert.Len(t, got, 3)

	got = Filter(events, Criteria{Window: WindowAll, Category: "study"}, now)
	assert.Empty(t, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	now := testBase.AddDate(0, 0, 40)
	events := []Event{
		testEvent(1, 1, 40, model.CategoryDaily),
		testEvent(2, 2, 38, model.CategoryStudy),
		testEvent(3, 1, 10, model.CategoryWork),
		testEvent(4, 3, 39, model.CategoryStudy),
	}

	for _, crit := range []Criteria{
		{Window: Window7Days, Category: CategoryAll},
		{Window: Window30Days, Category: "study"},
		{Window: WindowAll, Category: CategoryAll, UserID: 1},
		{Window: Window7Days, Category: "study", UserID: 2},
	} {
		once := Filter(events, crit, now)
		twice := Filter(once, crit, now)
		assert.Equal(t, once, twice)
	}
}

// totalCount 与三个谓词逐一独立验证的暴力计数一致
func TestFilterMatchesBruteForceCount(t *testing.T) {
	now := testBase.AddDate(0, 0, 30)
	var events []Event
	cats := []model.ClockInCategory{model.CategoryDaily, model.CategoryStudy, model.CategoryExercise}
	for i := 0; i < 60; i++ {
		events = append(events, testEvent(int64(i+1), int64(i%3+1), i%31, cats[i%3]))
	}

	crit := Criteria{Window: Window7Days, Category: "study", UserID: 2}
	got := Filter(events, crit, now)

	want := 0
	cutoff := now.AddDate(0, 0, -7)
	for _, e := range events {
		inWindow := !e.SubmittedAt.Before(cutoff) && !e.SubmittedAt.After(now)
		if inWindow && e.Category == model.CategoryStudy && e.UserID == 2 {
			want++
		}
	}
	assert.Equal(t, want, len(got))
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, Criteria{Window: Window7Days, Category: CategoryAll}, testBase)
	assert.Empty(t, got)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	now := testBase.AddDate(0, 0, 1)
	events := []Event{
		testEvent(1, 1, 0, model.CategoryDaily),
		testEvent(2, 2, 1, model.CategoryStudy),
	}
	snapshot := make([]Event, len(events))
	copy(snapshot, events)

	_ = Filter(events, Criteria{Window: WindowAll, Category: "study"}, now)
	assert.Equal(t, snapshot, events)
}

func TestParseTimeWindow(t *testing.T) {
	w, ok := ParseTimeWindow("7d")
	assert.True(t, ok)
	assert.Equal(t, Window7Days, w)

	w, ok = ParseTimeWindow("")
	assert.True(t, ok)
	assert.Equal(t, WindowAll, w)

	_, ok = ParseTimeWindow("90d")
	assert.False(t, ok)
}
