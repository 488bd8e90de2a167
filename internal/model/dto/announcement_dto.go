package dto

import "time"

// ========== Announcement 相关 DTO ==========

// CreateAnnouncementRequest 发布公告请求
type CreateAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateAnnouncementRequest 编辑公告请求
type UpdateAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AnnouncementData 公告响应体
type AnnouncementData struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
