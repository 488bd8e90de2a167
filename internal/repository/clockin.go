package repository

import (
	"context"

	"DakaCamp/internal/model"
	"DakaCamp/storage/database"
)

// ClockInWithUser 打卡记录连同冗余的用户展示字段
// 统计引擎和动态流都要用户姓名/邮箱，这里一次 JOIN 取齐
type ClockInWithUser struct {
	model.ClockIn
	UserPublicID    int64  `json:"user_public_id"`
	UserDisplayName string `json:"user_display_name"`
	UserEmail       string `json:"user_email"`
}

const clockInWithUserSelect = "clock_ins.*, users.public_id AS user_public_id, users.display_name AS user_display_name, users.email AS user_email"

// CreateClockIn 落库一条打卡记录
func CreateClockIn(ctx context.Context, record *model.ClockIn) error {
	return database.DB().WithContext(ctx).Create(record).Error
}

// GetClockInByPublicID 按对外 ID 取单条打卡记录
func GetClockInByPublicID(ctx context.Context, publicID int64) (*model.ClockIn, error) {
	var record model.ClockIn
	err := database.DB().WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateClockIn 保存打卡记录的可编辑字段
func UpdateClockIn(ctx context.Context, record *model.ClockIn) error {
	return database.DB().WithContext(ctx).
		Model(record).
		Select("content", "images").
		Updates(record).Error
}

// ListAllClockIns 拉取全量打卡（统计引擎的全部用户范围），提交时间倒序
// 引擎在内存里做进一步筛选，这里只做粗粒度范围
func ListAllClockIns(ctx context.Context) ([]ClockInWithUser, error) {
	var rows []ClockInWithUser
	err := database.DB().WithContext(ctx).
		Table("clock_ins").
		Select(clockInWithUserSelect).
		Joins("INNER JOIN users ON users.id = clock_ins.user_id").
		Where("clock_ins.deleted_at IS NULL").
		Order("clock_ins.submitted_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListClockInsByUser 拉取单个用户的全部打卡（统计引擎的单用户范围），提交时间倒序
func ListClockInsByUser(ctx context.Context, userID int64) ([]ClockInWithUser, error) {
	var rows []ClockInWithUser
	err := database.DB().WithContext(ctx).
		Table("clock_ins").
		Select(clockInWithUserSelect).
		Joins("INNER JOIN users ON users.id = clock_ins.user_id").
		Where("clock_ins.user_id = ? AND clock_ins.deleted_at IS NULL", userID).
		Order("clock_ins.submitted_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListFeed 首页动态流：跨用户最新 N 条
func ListFeed(ctx context.Context, limit int) ([]ClockInWithUser, error) {
	var rows []ClockInWithUser
	err := database.DB().WithContext(ctx).
		Table("clock_ins").
		Select(clockInWithUserSelect).
		Joins("INNER JOIN users ON users.id = clock_ins.user_id").
		Where("clock_ins.deleted_at IS NULL").
		Order("clock_ins.submitted_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ListMine 我的打卡记录，提交时间倒序
func ListMine(ctx context.Context, userID int64, limit, offset int) ([]model.ClockIn, error) {
	var rows []model.ClockIn
	q := database.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&rows).Error
	return rows, err
}
