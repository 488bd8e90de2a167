package analytics

import (
	"time"

	"DakaCamp/internal/model"
)

// Filter 按时间窗口、打卡类型、用户范围取交集
// now 由调用方显式传入，引擎内部不读时钟
// 结果保持输入相对顺序，后续各视图各自重排
func Filter(events []Event, criteria Criteria, now time.Time) []Event {
	out := make([]Event, 0, len(events))

	var cutoff time.Time
	windowDays := criteria.Window.Days()
	if windowDays > 0 {
		cutoff = now.AddDate(0, 0, -windowDays)
	}

	for _, e := range events {
		if windowDays > 0 {
			// [now-N天, now] 闭区间
			if e.SubmittedAt.Before(cutoff) || e.SubmittedAt.After(now) {
				continue
			}
		}

		if criteria.Category != CategoryAll && criteria.Category != "" {
			if string(model.NormalizeCategory(e.Category)) != criteria.Category {
				continue
			}
		}

		if !criteria.ForAllUsers() && e.UserID != criteria.UserID {
			continue
		}

		out = append(out, e)
	}

	return out
}
