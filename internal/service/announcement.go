package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"DakaCamp/internal/middleware"
	"DakaCamp/internal/model"
	"DakaCamp/internal/model/dto"
	"DakaCamp/internal/queue"
	"DakaCamp/internal/repository"
	pkgerrors "DakaCamp/pkg/errors"
	"DakaCamp/pkg/logger"
	"DakaCamp/pkg/snowflake"
)

type AnnouncementService struct{}

var (
	announcementService *AnnouncementService
	announcementOnce    sync.Once
)

func Announcements() *AnnouncementService {
	announcementOnce.Do(func() {
		announcementService = &AnnouncementService{}
	})

	return announcementService
}

// List 公告列表，最新在前；limit 为 0 表示不截断
func (s *AnnouncementService) List(ctx context.Context, limit int) ([]dto.AnnouncementData, error) {
	rows, err := repository.ListAnnouncements(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AnnouncementData, 0, len(rows))
	for _, row := range rows {
		items = append(items, announcementData(&row))
	}
	return items, nil
}

// Get 公告详情
func (s *AnnouncementService) Get(ctx context.Context, publicID int64) (*dto.AnnouncementData, error) {
	row, err := repository.GetAnnouncementWithAuthor(ctx, publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.AnnouncementNotFound
		}
		return nil, err
	}
	data := announcementData(row)
	return &data, nil
}

// Create 发布公告
func (s *AnnouncementService) Create(ctx context.Context, identity middleware.Identity, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementData, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, pkgerrors.InvalidRequest
	}

	author, err := ensureUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, err
	}

	row := &model.Announcement{
		PublicID: publicID,
		AuthorID: author.ID,
		Title:    title,
		Content:  content,
	}
	if err := repository.CreateAnnouncement(ctx, row); err != nil {
		return nil, err
	}

	if err := queue.PublishAnnouncementCreated(queue.AnnouncementCreatedMessage{
		AnnouncementID: row.PublicID,
		AuthorID:       identity.PublicID,
		Title:          row.Title,
		CreatedAt:      row.CreatedAt.Format(time.RFC3339),
	}); err != nil {
		logger.Logger.Warn("Announcement created event not published",
			zap.Int64("announcement_id", row.PublicID),
			zap.Error(err),
		)
	}

	return &dto.AnnouncementData{
		ID:         row.PublicID,
		AuthorID:   identity.PublicID,
		AuthorName: author.DisplayName,
		Title:      row.Title,
		Content:    row.Content,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

// Update 编辑公告，只有作者本人可改
func (s *AnnouncementService) Update(ctx context.Context, identity middleware.Identity, publicID int64, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementData, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, pkgerrors.InvalidRequest
	}

	row, err := s.getOwned(ctx, identity, publicID)
	if err != nil {
		return nil, err
	}

	row.Title = title
	row.Content = content
	if err := repository.UpdateAnnouncement(ctx, row); err != nil {
		return nil, err
	}

	return &dto.AnnouncementData{
		ID:         row.PublicID,
		AuthorID:   identity.PublicID,
		AuthorName: identity.DisplayName,
		Title:      row.Title,
		Content:    row.Content,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

// Delete 删除公告，只有作者本人可删
func (s *AnnouncementService) Delete(ctx context.Context, identity middleware.Identity, publicID int64) error {
	row, err := s.getOwned(ctx, identity, publicID)
	if err != nil {
		return err
	}
	return repository.DeleteAnnouncement(ctx, row)
}

// getOwned 取公告并校验当前用户是作者
func (s *AnnouncementService) getOwned(ctx context.Context, identity middleware.Identity, publicID int64) (*model.Announcement, error) {
	row, err := repository.GetAnnouncementByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.AnnouncementNotFound
		}
		return nil, err
	}

	author, err := ensureUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	if row.AuthorID != author.ID {
		return nil, pkgerrors.AnnouncementForbidden
	}
	return row, nil
}

func announcementData(row *repository.AnnouncementWithAuthor) dto.AnnouncementData {
	return dto.AnnouncementData{
		ID:         row.PublicID,
		AuthorID:   row.AuthorPublicID,
		AuthorName: row.AuthorName,
		Title:      row.Title,
		Content:    row.Content,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
