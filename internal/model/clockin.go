package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ClockInCategory 打卡类型枚举
type ClockInCategory string

const (
	CategoryDaily    ClockInCategory = "daily"    // 日常
	CategoryStudy    ClockInCategory = "study"    // 学习
	CategoryExercise ClockInCategory = "exercise" // 运动
	CategoryWork     ClockInCategory = "work"     // 工作
	CategoryOther    ClockInCategory = "other"    // 其他
)

// Categories 所有合法的打卡类型，顺序即前端下拉顺序
var Categories = []ClockInCategory{
	CategoryDaily,
	CategoryStudy,
	CategoryExercise,
	CategoryWork,
	CategoryOther,
}

// IsValidCategory 判断是否为合法打卡类型
func IsValidCategory(c string) bool {
	for _, cat := range Categories {
		if string(cat) == c {
			return true
		}
	}
	return false
}

// NormalizeCategory 聚合口径下的类型归一：未知/缺失一律按日常计
// 原始值在动态流和导出里原样展示，不在这里改写
func NormalizeCategory(c ClockInCategory) ClockInCategory {
	for _, cat := range Categories {
		if cat == c {
			return c
		}
	}
	return CategoryDaily
}

// ClockIn 打卡记录模型
type ClockIn struct {
	BaseModel
	PublicID    int64           `gorm:"uniqueIndex;not null" json:"public_id"`
	UserID      int64           `gorm:"not null;index:idx_clock_ins_user_date" json:"user_id"`
	Content     string          `gorm:"type:text;not null" json:"content"`
	Category    ClockInCategory `gorm:"type:varchar(16);not null;default:'daily';index" json:"category"`
	Images      ImageList       `gorm:"type:jsonb;default:'[]'" json:"images"`
	ClockInDate time.Time       `gorm:"type:date;not null;index:idx_clock_ins_user_date" json:"clock_in_date"`
	SubmittedAt time.Time       `gorm:"type:timestamptz;not null;index" json:"submitted_at"`
}

// TableName 指定表名
func (ClockIn) TableName() string {
	return "clock_ins"
}

// ImageList 图片引用数组（JSONB）
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal ImageList value")
	}
	return json.Unmarshal(bytes, l)
}
