package analytics

import (
	"math"
	"sort"
	"time"

	"DakaCamp/utils"
)

// IntMetric 整数指标，跨用户范围下不适用时 Applicable 为 false
// 用显式标记而不是 0 值，调用方不会把 "不适用" 误当成零
type IntMetric struct {
	Applicable bool `json:"applicable"`
	Value      int  `json:"value"`
}

// RateMetric 百分比指标，保留一位小数
type RateMetric struct {
	Applicable bool    `json:"applicable"`
	Value      float64 `json:"value"`
}

// Summary 汇总统计
type Summary struct {
	TotalCount     int        `json:"total_count"`
	CurrentStreak  IntMetric  `json:"current_streak"`
	LongestStreak  IntMetric  `json:"longest_streak"`
	CompletionRate RateMetric `json:"completion_rate"`
}

// ComputeSummary 在已筛选的事件集上计算汇总统计
// 连续打卡和完成率只对单用户范围有意义，全部用户时标记为不适用
// allTimeTargetDays 是 "全部时间" 窗口下完成率的目标天数
func ComputeSummary(filtered []Event, criteria Criteria, now time.Time, allTimeTargetDays int) Summary {
	s := Summary{
		TotalCount:     len(filtered),
		CurrentStreak:  IntMetric{Applicable: false},
		LongestStreak:  IntMetric{Applicable: false},
		CompletionRate: RateMetric{Applicable: false},
	}

	if criteria.ForAllUsers() {
		return s
	}

	current, longest := computeStreaks(filtered, now)
	s.CurrentStreak = IntMetric{Applicable: true, Value: current}
	s.LongestStreak = IntMetric{Applicable: true, Value: longest}

	targetDays := criteria.Window.Days()
	if targetDays == 0 {
		targetDays = allTimeTargetDays
	}
	if targetDays > 0 {
		rate := float64(len(filtered)) / float64(targetDays) * 100
		s.CompletionRate = RateMetric{Applicable: true, Value: math.Round(rate*10) / 10}
	}

	return s
}

// computeStreaks 按打卡归属日做连续天检测
// 同一天多条算延续不叠加，隔一天以上断档重计
func computeStreaks(events []Event, now time.Time) (current, longest int) {
	// 日期异常的记录进不了连续天统计，但仍计入 TotalCount
	dates := make([]time.Time, 0, len(events))
	for _, e := range events {
		if e.EventDate.IsZero() {
			continue
		}
		dates = append(dates, utils.DayOf(e.EventDate))
	}
	if len(dates) == 0 {
		return 0, 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		switch gap := utils.DaysBetween(dates[i-1], dates[i]); {
		case gap == 0:
			// 同一天重复打卡，不加长也不打断
		case gap == 1:
			run++
		default:
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	// 最近一次打卡距今超过 1 天，连续已断
	if utils.DaysBetween(dates[len(dates)-1], now) <= 1 {
		current = run
	}

	return current, longest
}
