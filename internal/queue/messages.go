package queue

// ClockInCreatedMessage 打卡创建事件，供外部实时推送/消息流消费
type ClockInCreatedMessage struct {
	MessageID   string   `json:"message_id"`
	ClockInID   int64    `json:"clock_in_id"`
	UserID      int64    `json:"user_id"` // 用户对外 ID
	DisplayName string   `json:"display_name"`
	Category    string   `json:"category"`
	Content     string   `json:"content"`
	Images      []string `json:"images"`
	ClockInDate string   `json:"clock_in_date"` // 2006-01-02
	SubmittedAt string   `json:"submitted_at"`  // RFC3339
}

// AnnouncementCreatedMessage 公告发布事件
type AnnouncementCreatedMessage struct {
	MessageID      string `json:"message_id"`
	AnnouncementID int64  `json:"announcement_id"`
	AuthorID       int64  `json:"author_id"`
	Title          string `json:"title"`
	CreatedAt      string `json:"created_at"`
}
