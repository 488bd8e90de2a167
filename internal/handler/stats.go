package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"DakaCamp/internal/model/dto"
	"DakaCamp/internal/service"
	"DakaCamp/pkg/export"
	"DakaCamp/pkg/logger"
	"DakaCamp/pkg/response"
)

// GetStats 统计视图
// GET /v1/stats?window=7d&category=all&user_id=0&page=1&page_size=10
func GetStats(ctx context.Context, c *app.RequestContext) {
	var q dto.StatsQuery
	if err := c.BindQuery(&q); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.Stats().GetStats(ctx, q, time.Now().UTC())
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, data)
}

// GetStatsUsers 统计页的用户花名册
// GET /v1/stats/users
func GetStatsUsers(ctx context.Context, c *app.RequestContext) {
	items, err := service.Users().Roster(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, items)
}

// ExportStats 按当前筛选条件导出 CSV
// GET /v1/stats/export?window=7d&category=all&user_id=0
func ExportStats(ctx context.Context, c *app.RequestContext) {
	var q dto.StatsQuery
	if err := c.BindQuery(&q); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	now := time.Now().UTC()
	rows, err := service.Stats().ExportRows(ctx, q, now)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		logger.Logger.Error("Failed to serialize export", zap.Error(err))
		response.Error(ctx, c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(now)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
