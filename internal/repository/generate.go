package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"DakaCamp/internal/model"
	"DakaCamp/pkg/errors"
	"DakaCamp/storage/database"
)

// 开发期用 gorm gen 生成类型安全查询到 internal/repository/query
// 生成结果不入库，运行时代码走上面的手写查询

// ========== User 相关查询接口 ==========

// UserQuerier 用户查询接口
type UserQuerier interface {
	// GetByPublicID 根据对外 ID 查询用户
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// GetByEmail 根据邮箱查询用户
	//
	// SELECT * FROM @@table WHERE email = @email LIMIT 1
	GetByEmail(email string) (*gen.T, error)

	// ListOrderedByName 花名册，按姓名排序
	//
	// SELECT * FROM @@table ORDER BY display_name ASC
	ListOrderedByName() ([]*gen.T, error)
}

// ========== ClockIn 相关查询接口 ==========

// ClockInQuerier 打卡记录查询接口
type ClockInQuerier interface {
	// GetByPublicID 根据对外 ID 查询打卡记录
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// ListByUserID 按用户查询，提交时间倒序
	//
	// SELECT * FROM @@table
	// WHERE user_id = @userID
	// ORDER BY submitted_at DESC
	// {{if limit > 0}}
	// LIMIT @limit OFFSET @offset
	// {{end}}
	ListByUserID(userID int64, limit, offset int) ([]*gen.T, error)

	// ListByUserIDAndDateRange 按用户和归属日范围查询
	//
	// SELECT * FROM @@table
	// WHERE user_id = @userID
	//   AND clock_in_date >= @fromDate::date
	//   AND clock_in_date <= @toDate::date
	// ORDER BY clock_in_date DESC
	ListByUserIDAndDateRange(userID int64, fromDate, toDate string) ([]*gen.T, error)

	// CountByCategory 各类型的打卡数
	//
	// SELECT category, COUNT(*) as count
	// FROM @@table
	// GROUP BY category
	CountByCategory() ([]gen.M, error)
}

// ========== Announcement 相关查询接口 ==========

// AnnouncementQuerier 公告查询接口
type AnnouncementQuerier interface {
	// GetByPublicID 根据对外 ID 查询公告
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// ListLatest 最新公告
	//
	// SELECT * FROM @@table
	// ORDER BY created_at DESC
	// LIMIT @limit
	ListLatest(limit int) ([]*gen.T, error)
}

func Generate() error {
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.DB()
	if db == nil {
		return errors.DatabaseConnectionNil
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query",
		ModelPkgPath:      "DakaCamp/internal/model",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	// 注册现有 model，gen 直接复用不再生成新的
	g.ApplyBasic(
		&model.User{},
		&model.ClockIn{},
		&model.Announcement{},
	)

	g.ApplyInterface(func(UserQuerier) {}, &model.User{})
	g.ApplyInterface(func(ClockInQuerier) {}, &model.ClockIn{})
	g.ApplyInterface(func(AnnouncementQuerier) {}, &model.Announcement{})

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
