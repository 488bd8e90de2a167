package analytics

import (
	"sort"
	"time"

	"DakaCamp/utils"
)

// Bucket 图表的一个日桶
type Bucket struct {
	Label string `json:"date"`  // MM-DD，零填充，单年内字典序即时间序
	Count int    `json:"count"`
}

// BucketByDay 按提交时间的自然日分桶，升序输出
// 图表反映的是提交活跃度，所以用 SubmittedAt 而不是打卡归属日
// 没有事件的日期不补零桶，图上表现为缺刻度而不是零柱
func BucketByDay(filtered []Event) []Bucket {
	counts := make(map[time.Time]int)
	for _, e := range filtered {
		if e.SubmittedAt.IsZero() {
			continue
		}
		counts[utils.DayOf(e.SubmittedAt)]++
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	buckets := make([]Bucket, 0, len(days))
	for _, day := range days {
		buckets = append(buckets, Bucket{
			Label: day.Format("01-02"),
			Count: counts[day],
		})
	}

	return buckets
}
