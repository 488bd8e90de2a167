package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"DakaCamp/internal/cache"
	"DakaCamp/internal/model"
	"DakaCamp/internal/model/dto"
	"DakaCamp/internal/repository"
	"DakaCamp/pkg/logger"
)

type UserService struct{}

var (
	userService *UserService
	userOnce    sync.Once
)

func Users() *UserService {
	userOnce.Do(func() {
		userService = &UserService{}
	})

	return userService
}

// Roster 用户花名册，统计页的范围下拉用
// 走缓存，新用户落地时由打卡侧失效
func (s *UserService) Roster(ctx context.Context) ([]dto.UserData, error) {
	users, hit, err := cache.GetRoster(ctx)
	if err != nil {
		logger.Logger.Warn("Roster cache read failed", zap.Error(err))
	}

	if !hit {
		users, err = repository.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		if err := cache.SetRoster(ctx, users); err != nil {
			logger.Logger.Warn("Roster cache write failed", zap.Error(err))
		}
	}

	return rosterData(users), nil
}

func rosterData(users []model.User) []dto.UserData {
	items := make([]dto.UserData, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserData{
			ID:          u.PublicID,
			DisplayName: u.DisplayName,
			Email:       u.Email,
		})
	}
	return items
}
