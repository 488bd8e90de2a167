package model

// Announcement 公告模型
type Announcement struct {
	BaseModel
	PublicID int64  `gorm:"uniqueIndex;not null" json:"public_id"`
	AuthorID int64  `gorm:"not null;index" json:"author_id"`
	Title    string `gorm:"type:varchar(128);not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

// TableName 指定表名
func (Announcement) TableName() string {
	return "announcements"
}
