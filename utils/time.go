package utils

import (
	"time"
)

// DayOf 截断到自然日（日历天粒度，统一锚定到 UTC 零点便于做天数差）
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween 计算 from 到 to 之间的自然日差，按日历天算而不是 24 小时段
func DaysBetween(from, to time.Time) int {
	return int(DayOf(to).Sub(DayOf(from)).Hours() / 24)
}

// SameDay 判断两个时间是否落在同一个自然日
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
