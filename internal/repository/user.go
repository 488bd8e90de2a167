package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"DakaCamp/internal/model"
	"DakaCamp/storage/database"
)

// GetUserByPublicID 根据对外 ID 查用户，API 里出现的 user_id 都是 public_id
func GetUserByPublicID(ctx context.Context, publicID int64) (*model.User, error) {
	var user model.User
	err := database.DB().WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers 用户花名册，填充统计页的范围下拉
func ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := database.DB().WithContext(ctx).
		Order("display_name ASC").
		Find(&users).Error
	return users, err
}

// EnsureUser 按身份服务下发的信息落地用户冗余行
// 首次见到就建，见到新姓名/邮箱就刷，返回本地行
// created 表示这次是否新建了行，调用方据此失效花名册缓存
func EnsureUser(ctx context.Context, publicID int64, displayName, email string) (*model.User, bool, error) {
	db := database.DB().WithContext(ctx)

	var user model.User
	err := db.Where("public_id = ?", publicID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = model.User{
			PublicID:    publicID,
			DisplayName: displayName,
			Email:       email,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, false, err
		}
		return &user, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	if user.DisplayName != displayName || user.Email != email {
		user.DisplayName = displayName
		user.Email = email
		if err := db.Model(&user).Updates(map[string]interface{}{
			"display_name": displayName,
			"email":        email,
		}).Error; err != nil {
			return nil, false, err
		}
	}

	return &user, false, nil
}
