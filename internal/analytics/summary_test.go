package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"DakaCamp/internal/model"
)

func singleUserEvents(days ...int) []Event {
	events := make([]Event, 0, len(days))
	for i, d := range days {
		events = append(events, testEvent(int64(i+1), 1, d, model.CategoryDaily))
	}
	return events
}

func TestSummaryAllUsersScopeNotApplicable(t *testing.T) {
	events := singleUserEvents(0, 1, 2)
	crit := Criteria{Window: WindowAll, Category: CategoryAll, UserID: AllUsers}

	s := ComputeSummary(events, crit, testBase.AddDate(0, 0, 2), 30)

	assert.Equal(t, 3, s.TotalCount)
	assert.False(t, s.CurrentStreak.Applicable)
	assert.False(t, s.LongestStreak.Applicable)
	assert.False(t, s.CompletionRate.Applicable)
}

func TestSummaryConsecutiveDays(t *testing.T) {
	events := singleUserEvents(0, 1, 2, 3, 4)
	crit := Criteria{Window: WindowAll, Category: CategoryAll, UserID: 1}
	now := testBase.AddDate(0, 0, 4)

	s := ComputeSummary(events, crit, now, 30)

	assert.Equal(t, 5, s.TotalCount)
	assert.Equal(t, IntMetric{Applicable: true, Value: 5}, s.LongestStreak)
	assert.Equal(t, IntMetric{Applicable: true, Value: 5}, s.CurrentStreak)
}

// 昨天收尾的连续打卡今天还算活着
func TestSummaryStreakAliveYesterday(t *testing.T) {
	events := singleUserEvents(0, 1, 2)
	crit := Criteria{Window: WindowAll, Category: CategoryAll, UserID: 1}
	now := testBase.AddDate(0, 0, 3)

	s := ComputeSummary(events, crit, now, 30)
	assert.Equal(t, 3, s.CurrentStreak.Value)

	// 隔两天就断了
	now = testBase.AddDate(0, 0, 4)
	s = ComputeSummary(events, crit, now, 30)
	assert.Equal(t, 0, s.CurrentStreak.Value)
	assert.Equal(t, 3, s.LongestStreak.Value)
}

// 两段连续之间隔 2 天：longest 取两段较大者，current 只看最近一段
func TestSummaryGapBetweenClusters(t *testing.T) {
	// 段 A 长 3（第 0~2 天），断 2 天，段 B 长 2（第 5~6 天）
	events := singleUserEvents(0, 1, 2, 5, 6)
	crit := Criteria{Window: WindowAll, Category: CategoryAll, UserID: 1}

	now := testBase.AddDate(0, 0, 6)
	s := ComputeSummary(events, crit, now, 30)
	assert.Equal(t, 3, s.LongestStreak.Value)
	assert.Equal(t, 2, s.CurrentStreak.Value)

	// 最近一段失活后 current 归零
	now = testBase.AddDate(0, 0, 9)
	s = ComputeSummary(events, crit, now, 30)
	assert.Equal(t, 3, s.LongestStreak.Value)
	assert.Equal(t, 0, s.CurrentStreak.Value)
}

// 同一天多次打卡不加长也不打断
func TestSummaryDuplicateDayEntries(t *testing.T) {
	events := singleUserEvents(0, 1, 1, 1, 2)
	crit := Criteria{Window: WindowAll, Category: CategoryAll, UserID: 1}
	now := testBase.AddDate(0, 0, 2)

	s := ComputeSummary(events, crit, now, 30)

	assert.Equal(t, 5, s.TotalCount) // 每条都计数
	assert.Equal(t, 3, s.LongestStreak.Value)
	assert.Equal(t, 3, s.CurrentStreak.Value)
}

// 端到端样例：第 1、2、4 天打卡，第 3 天漏了
func TestSummarySkippedDayScenario(t *testing.T) {
	events := singleUserEvents(1, 2, 4)
	crit := Criteria{Window: WindowAll, Category: CategoryAll, UserID: 1}

	// now = 第 4 天，最近一段还活着
	s := ComputeSummary(events, crit, testBase.AddDate(0, 0, 4), 30)
	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, 2, s.LongestStreak.Value)
	assert.Equal(t, 1, s.CurrentStreak.Value)

	// now = 第 6 天，连续已断
	s = ComputeSummary(events, crit, testBase.AddDate(0, 0, 6), 30)
	assert.Equal(t, 2, s.LongestStreak.Value)
	assert.Equal(t, 0, s.CurrentStreak.Value)
}

func TestSummaryCompletionRate(t *testing.T) {
	events := singleUserEvents(0, 1, 2)
	now := testBase.AddDate(0, 0, 2)

	s := ComputeSummary(events, Criteria{Window: Window7Days, Category: CategoryAll, UserID: 1}, now, 30)
	assert.Equal(t, RateMetric{Applicable: true, Value: 42.9}, s.CompletionRate)

	s = ComputeSummary(events, Criteria{Window: Window30Days, Category: CategoryAll, UserID: 1}, now, 30)
	assert.Equal(t, RateMetric{Applicable: true, Value: 10.0}, s.CompletionRate)

	// 全部时间走可配置的目标天数
	s = ComputeSummary(events, Criteria{Window: WindowAll, Category: CategoryAll, UserID: 1}, now, 10)
	assert.Equal(t, RateMetric{Applicable: true, Value: 30.0}, s.CompletionRate)
}

func TestSummaryEmptyInput(t *testing.T) {
	crit := Criteria{Window: Window7Days, Category: CategoryAll, UserID: 1}

	s := ComputeSummary(nil, crit, testBase, 30)

	assert.Equal(t, 0, s.TotalCount)
	assert.Equal(t, IntMetric{Applicable: true, Value: 0}, s.CurrentStreak)
	assert.Equal(t, IntMetric{Applicable: true, Value: 0}, s.LongestStreak)
	assert.Equal(t, RateMetric{Applicable: true, Value: 0}, s.CompletionRate)
}

// 日期异常的记录计数但不进连续天统计
func TestSummaryZeroEventDateExcludedFromStreak(t *testing.T) {
	events := singleUserEvents(0, 1)
	broken := testEvent(99, 1, 0, model.CategoryDaily)
	broken.EventDate = time.Time{}
	events = append(events, broken)

	crit := Criteria{Window: WindowAll, Category: CategoryAll, UserID: 1}
	s := ComputeSummary(events, crit, testBase.AddDate(0, 0, 1), 30)

	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, 2, s.LongestStreak.Value)
	assert.Equal(t, 2, s.CurrentStreak.Value)
}
