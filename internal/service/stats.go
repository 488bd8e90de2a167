package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"DakaCamp/config"
	"DakaCamp/internal/analytics"
	"DakaCamp/internal/model"
	"DakaCamp/internal/model/dto"
	"DakaCamp/internal/repository"
	pkgerrors "DakaCamp/pkg/errors"
)

type StatsService struct{}

var (
	statsService *StatsService
	statsOnce    sync.Once
)

func Stats() *StatsService {
	statsOnce.Do(func() {
		statsService = &StatsService{}
	})

	return statsService
}

// GetStats 统计视图：汇总卡片 + 按天图表 + 分页记录，一次请求取齐
func (s *StatsService) GetStats(ctx context.Context, q dto.StatsQuery, now time.Time) (*dto.StatsData, error) {
	scope, err := s.buildScope(ctx, q)
	if err != nil {
		return nil, err
	}

	events, err := s.loadEvents(ctx, scope)
	if err != nil {
		return nil, err
	}

	filtered := analytics.Filter(events, scope.criteria, now)
	summary := analytics.ComputeSummary(filtered, scope.criteria, now, config.Cfg.AnalyticsAllTimeTargetDays)
	buckets := analytics.BucketByDay(filtered)

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = config.Cfg.AnalyticsDefaultPageSize
	}
	page := analytics.Paginate(filtered, q.Page, pageSize)

	series := make([]dto.SeriesPointData, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, dto.SeriesPointData{Date: b.Label, Count: b.Count})
	}

	items := make([]dto.ClockInData, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, eventData(e))
	}

	return &dto.StatsData{
		Summary: dto.NewSummaryData(summary),
		Series:  series,
		Records: dto.PageData{
			Items:      items,
			Page:       page.Page,
			PageSize:   pageSize,
			TotalItems: page.TotalCount,
			TotalPages: page.TotalPages,
		},
	}, nil
}

// ExportRows 导出数据集，与统计视图同一套筛选口径，顺序为提交时间倒序
func (s *StatsService) ExportRows(ctx context.Context, q dto.StatsQuery, now time.Time) ([]analytics.ExportRow, error) {
	scope, err := s.buildScope(ctx, q)
	if err != nil {
		return nil, err
	}

	events, err := s.loadEvents(ctx, scope)
	if err != nil {
		return nil, err
	}

	filtered := analytics.Filter(events, scope.criteria, now)
	return analytics.ToExportRows(filtered), nil
}

// statsScope 落定的筛选条件，user 仅在单用户范围下非空
type statsScope struct {
	criteria analytics.Criteria
	user     *model.User
}

// buildScope 校验并落定筛选条件，user_id 一律是对外 ID
func (s *StatsService) buildScope(ctx context.Context, q dto.StatsQuery) (statsScope, error) {
	window, ok := analytics.ParseTimeWindow(q.Window)
	if !ok {
		return statsScope{}, pkgerrors.StatsWindowInvalid
	}

	category := q.Category
	if category == "" {
		category = analytics.CategoryAll
	}
	if category != analytics.CategoryAll && !model.IsValidCategory(category) {
		return statsScope{}, pkgerrors.StatsCategoryInvalid
	}

	scope := statsScope{
		criteria: analytics.Criteria{
			Window:   window,
			Category: category,
			UserID:   q.UserID,
		},
	}

	if q.UserID != analytics.AllUsers {
		user, err := repository.GetUserByPublicID(ctx, q.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return statsScope{}, pkgerrors.StatsUserNotFound
			}
			return statsScope{}, err
		}
		scope.user = user
	}

	return scope, nil
}

// loadEvents 拉取引擎输入，单用户范围走用户索引，其余全量
func (s *StatsService) loadEvents(ctx context.Context, scope statsScope) ([]analytics.Event, error) {
	var (
		rows []repository.ClockInWithUser
		err  error
	)
	if scope.user == nil {
		rows, err = repository.ListAllClockIns(ctx)
	} else {
		rows, err = repository.ListClockInsByUser(ctx, scope.user.ID)
	}
	if err != nil {
		return nil, err
	}

	events := make([]analytics.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, analytics.Event{
			ID:              row.PublicID,
			UserID:          row.UserPublicID,
			UserDisplayName: row.UserDisplayName,
			UserEmail:       row.UserEmail,
			Content:         row.Content,
			Category:        row.Category,
			Images:          row.Images,
			EventDate:       row.ClockInDate,
			SubmittedAt:     row.SubmittedAt,
		})
	}
	return events, nil
}

func eventData(e analytics.Event) dto.ClockInData {
	data := dto.ClockInData{
		ID:          e.ID,
		Content:     e.Content,
		Category:    string(e.Category),
		Images:      e.Images,
		SubmittedAt: e.SubmittedAt,
	}
	if !e.EventDate.IsZero() {
		data.ClockInDate = e.EventDate.Format(clockInDateLayout)
	}
	return data
}
