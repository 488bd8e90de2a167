package repository

import (
	"context"

	"gorm.io/gorm"

	"DakaCamp/internal/model"
	"DakaCamp/storage/database"
)

// AnnouncementWithAuthor 公告连同作者展示字段
type AnnouncementWithAuthor struct {
	model.Announcement
	AuthorPublicID int64  `json:"author_public_id"`
	AuthorName     string `json:"author_name"`
}

const announcementWithAuthorSelect = "announcements.*, users.public_id AS author_public_id, users.display_name AS author_name"

// ListAnnouncements 公告列表，最新在前
func ListAnnouncements(ctx context.Context, limit int) ([]AnnouncementWithAuthor, error) {
	var rows []AnnouncementWithAuthor
	q := database.DB().WithContext(ctx).
		Table("announcements").
		Select(announcementWithAuthorSelect).
		Joins("INNER JOIN users ON users.id = announcements.author_id").
		Where("announcements.deleted_at IS NULL").
		Order("announcements.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

// GetAnnouncementWithAuthor 公告详情连同作者展示字段
func GetAnnouncementWithAuthor(ctx context.Context, publicID int64) (*AnnouncementWithAuthor, error) {
	var row AnnouncementWithAuthor
	err := database.DB().WithContext(ctx).
		Table("announcements").
		Select(announcementWithAuthorSelect).
		Joins("INNER JOIN users ON users.id = announcements.author_id").
		Where("announcements.public_id = ? AND announcements.deleted_at IS NULL", publicID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// GetAnnouncementByPublicID 公告详情
func GetAnnouncementByPublicID(ctx context.Context, publicID int64) (*model.Announcement, error) {
	var row model.Announcement
	err := database.DB().WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateAnnouncement 新建公告
func CreateAnnouncement(ctx context.Context, row *model.Announcement) error {
	return database.DB().WithContext(ctx).Create(row).Error
}

// UpdateAnnouncement 更新公告标题与内容
func UpdateAnnouncement(ctx context.Context, row *model.Announcement) error {
	return database.DB().WithContext(ctx).Model(row).Updates(map[string]interface{}{
		"title":   row.Title,
		"content": row.Content,
	}).Error
}

// DeleteAnnouncement 软删除公告
func DeleteAnnouncement(ctx context.Context, row *model.Announcement) error {
	return database.DB().WithContext(ctx).Delete(row).Error
}
