package model

// User 用户模型
// 身份与登录归外部身份服务管，这里只落地展示与导出需要的冗余字段
type User struct {
	BaseModel
	PublicID    int64  `gorm:"uniqueIndex;not null" json:"public_id"`
	DisplayName string `gorm:"type:varchar(64);not null;default:''" json:"display_name"`
	Email       string `gorm:"uniqueIndex;type:varchar(128);not null" json:"email"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
