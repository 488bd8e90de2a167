package dto

import "DakaCamp/internal/analytics"

// ========== Stats 相关 DTO ==========

// StatsQuery 统计视图查询参数
// window: 7d / 30d / all（缺省 all）
// category: all 或具体分类
// user_id: 目标用户的公开 ID，0 表示全体
type StatsQuery struct {
	Window   string `query:"window"`
	Category string `query:"category"`
	UserID   int64  `query:"user_id"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// MetricData 整数指标，applicable=false 时 value 无意义
type MetricData struct {
	Applicable bool `json:"applicable"`
	Value      int  `json:"value"`
}

// RateMetricData 百分比指标，保留一位小数
type RateMetricData struct {
	Applicable bool    `json:"applicable"`
	Value      float64 `json:"value"`
}

// SummaryData 汇总卡片
type SummaryData struct {
	TotalCount     int            `json:"total_count"`
	CurrentStreak  MetricData     `json:"current_streak"`
	LongestStreak  MetricData     `json:"longest_streak"`
	CompletionRate RateMetricData `json:"completion_rate"`
}

// SeriesPointData 按天聚合的图表点位
type SeriesPointData struct {
	Date  string `json:"date"` // MM-DD
	Count int    `json:"count"`
}

// StatsData 统计视图响应体
type StatsData struct {
	Summary SummaryData       `json:"summary"`
	Series  []SeriesPointData `json:"series"`
	Records PageData          `json:"records"`
}

// PageData 分页结果
type PageData struct {
	Items      []ClockInData `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalItems int           `json:"total_items"`
	TotalPages int           `json:"total_pages"`
}

// NewSummaryData 由统计引擎结果构造响应体
func NewSummaryData(s analytics.Summary) SummaryData {
	return SummaryData{
		TotalCount:     s.TotalCount,
		CurrentStreak:  MetricData{Applicable: s.CurrentStreak.Applicable, Value: s.CurrentStreak.Value},
		LongestStreak:  MetricData{Applicable: s.LongestStreak.Applicable, Value: s.LongestStreak.Value},
		CompletionRate: RateMetricData{Applicable: s.CompletionRate.Applicable, Value: s.CompletionRate.Value},
	}
}
