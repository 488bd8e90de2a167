package dto

import "time"

// ========== ClockIn 相关 DTO ==========

// CreateClockInRequest 提交打卡请求
// date 可选，缺省归属今天；支持补打历史日期
type CreateClockInRequest struct {
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Images   []string `json:"images"`
	Date     string   `json:"date"` // 2006-01-02，可选
}

// UpdateClockInRequest 编辑打卡请求，只允许改内容和图片
// 归属日期和类型提交后不可变
type UpdateClockInRequest struct {
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// ClockInData 一条打卡记录的响应体
type ClockInData struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	ClockInDate string    `json:"clock_in_date"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// FeedItemData 动态流条目，带用户展示字段
type FeedItemData struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ListQuery 记录列表查询参数
type ListQuery struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}
