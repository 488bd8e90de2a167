package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"DakaCamp/config"
	"DakaCamp/internal/cache"
	"DakaCamp/internal/middleware"
	"DakaCamp/internal/model"
	"DakaCamp/internal/model/dto"
	"DakaCamp/internal/queue"
	"DakaCamp/internal/repository"
	pkgerrors "DakaCamp/pkg/errors"
	"DakaCamp/pkg/logger"
	"DakaCamp/pkg/snowflake"
	"DakaCamp/utils"
)

// maxImages 单条打卡允许携带的图片引用上限
const maxImages = 9

const clockInDateLayout = "2006-01-02"

type ClockInService struct{}

var (
	clockInService *ClockInService
	clockInOnce    sync.Once
)

func ClockIns() *ClockInService {
	clockInOnce.Do(func() {
		clockInService = &ClockInService{}
	})

	return clockInService
}

// Create 提交一条打卡记录
// date 缺省归属今天，允许补打历史日期；类型原样落库，聚合口径的归一在统计侧做
func (s *ClockInService) Create(ctx context.Context, identity middleware.Identity, req *dto.CreateClockInRequest, now time.Time) (*dto.ClockInData, error) {
	content, err := validateClockInPayload(req.Content, req.Images)
	if err != nil {
		return nil, err
	}

	// 提交接口只收五个预设类型；老数据里的未知值由统计侧归一兜底
	category := model.ClockInCategory(req.Category)
	if category == "" {
		category = model.CategoryDaily
	} else if !model.IsValidCategory(req.Category) {
		return nil, pkgerrors.ClockInCategoryInvalid
	}

	clockInDate := utils.DayOf(now)
	if req.Date != "" {
		parsed, err := time.ParseInLocation(clockInDateLayout, req.Date, time.UTC)
		if err != nil {
			return nil, pkgerrors.InvalidRequest
		}
		if parsed.After(clockInDate) {
			// 不允许预打未来日期
			return nil, pkgerrors.InvalidRequest
		}
		clockInDate = parsed
	}

	user, err := ensureUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, err
	}

	record := &model.ClockIn{
		PublicID:    publicID,
		UserID:      user.ID,
		Content:     content,
		Category:    category,
		Images:      model.ImageList(req.Images),
		ClockInDate: clockInDate,
		SubmittedAt: now,
	}
	if err := repository.CreateClockIn(ctx, record); err != nil {
		return nil, err
	}

	// 事件投递失败不影响打卡本身，消费侧靠动态流兜底
	if err := queue.PublishClockInCreated(queue.ClockInCreatedMessage{
		ClockInID:   record.PublicID,
		UserID:      identity.PublicID,
		DisplayName: identity.DisplayName,
		Category:    string(record.Category),
		Content:     record.Content,
		Images:      record.Images,
		ClockInDate: record.ClockInDate.Format(clockInDateLayout),
		SubmittedAt: record.SubmittedAt.Format(time.RFC3339),
	}); err != nil {
		logger.Logger.Warn("Clock-in created event not published",
			zap.Int64("clock_in_id", record.PublicID),
			zap.Error(err),
		)
	}

	data := clockInData(record)
	return &data, nil
}

// Update 编辑打卡记录，只有本人可改；归属日期和类型不可变
func (s *ClockInService) Update(ctx context.Context, identity middleware.Identity, publicID int64, req *dto.UpdateClockInRequest) (*dto.ClockInData, error) {
	content, err := validateClockInPayload(req.Content, req.Images)
	if err != nil {
		return nil, err
	}

	record, err := s.getOwned(ctx, identity, publicID)
	if err != nil {
		return nil, err
	}

	record.Content = content
	record.Images = model.ImageList(req.Images)
	if err := repository.UpdateClockIn(ctx, record); err != nil {
		return nil, err
	}

	data := clockInData(record)
	return &data, nil
}

// getOwned 取打卡记录并校验当前用户是作者
func (s *ClockInService) getOwned(ctx context.Context, identity middleware.Identity, publicID int64) (*model.ClockIn, error) {
	record, err := repository.GetClockInByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ClockInNotFound
		}
		return nil, err
	}

	user, err := ensureUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	if record.UserID != user.ID {
		return nil, pkgerrors.ClockInForbidden
	}
	return record, nil
}

// validateClockInPayload 校验可编辑字段，返回去除首尾空白后的内容
func validateClockInPayload(content string, images []string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", pkgerrors.ClockInContentRequired
	}
	if len(images) > maxImages {
		return "", pkgerrors.ClockInTooManyImages
	}
	return content, nil
}

// Feed 首页动态流，跨用户最新 N 条
func (s *ClockInService) Feed(ctx context.Context) ([]dto.FeedItemData, error) {
	rows, err := repository.ListFeed(ctx, config.Cfg.FeedLimit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FeedItemData, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.FeedItemData{
			ID:          row.PublicID,
			UserID:      row.UserPublicID,
			DisplayName: row.UserDisplayName,
			Email:       row.UserEmail,
			Content:     row.Content,
			Category:    string(row.Category),
			Images:      row.Images,
			SubmittedAt: row.SubmittedAt,
		})
	}
	return items, nil
}

// Mine 当前用户的打卡记录，提交时间倒序
func (s *ClockInService) Mine(ctx context.Context, identity middleware.Identity, q dto.ListQuery) ([]dto.ClockInData, error) {
	user, err := ensureUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = config.Cfg.AnalyticsDefaultPageSize
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := repository.ListMine(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ClockInData, 0, len(rows))
	for i := range rows {
		items = append(items, clockInData(&rows[i]))
	}
	return items, nil
}

// ensureUser 落地身份冗余行，新用户首次出现时失效花名册缓存
func ensureUser(ctx context.Context, identity middleware.Identity) (*model.User, error) {
	user, created, err := repository.EnsureUser(ctx, identity.PublicID, identity.DisplayName, identity.Email)
	if err != nil {
		return nil, err
	}
	if created {
		if err := cache.InvalidateRoster(ctx); err != nil {
			logger.Logger.Warn("Failed to invalidate roster cache", zap.Error(err))
		}
	}
	return user, nil
}

func clockInData(record *model.ClockIn) dto.ClockInData {
	return dto.ClockInData{
		ID:          record.PublicID,
		Content:     record.Content,
		Category:    string(record.Category),
		Images:      record.Images,
		ClockInDate: record.ClockInDate.Format(clockInDateLayout),
		SubmittedAt: record.SubmittedAt,
	}
}
