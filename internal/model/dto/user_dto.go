package dto

// ========== User 相关 DTO ==========

// UserData 花名册条目，填充统计页的范围下拉
type UserData struct {
	ID          int64  `json:"id"` // 对外 ID
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}
