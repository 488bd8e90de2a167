package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"DakaCamp/internal/middleware"
	"DakaCamp/internal/model/dto"
	"DakaCamp/internal/service"
	pkgerrors "DakaCamp/pkg/errors"
	"DakaCamp/pkg/response"
)

// CreateClockIn 提交打卡
// POST /v1/clock-ins
func CreateClockIn(ctx context.Context, c *app.RequestContext) {
	identity, ok := middleware.GetIdentity(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	var req dto.CreateClockInRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.ClockIns().Create(ctx, identity, &req, time.Now().UTC())
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, data)
}

// UpdateClockIn 编辑打卡
// PUT /v1/clock-ins/:id
func UpdateClockIn(ctx context.Context, c *app.RequestContext) {
	identity, ok := middleware.GetIdentity(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	publicID, ok := clockInID(ctx, c)
	if !ok {
		return
	}

	var req dto.UpdateClockInRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.ClockIns().Update(ctx, identity, publicID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, data)
}

func clockInID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	raw := c.Param("id")
	publicID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || publicID <= 0 {
		response.Error(ctx, c, pkgerrors.InvalidRequest)
		return 0, false
	}
	return publicID, true
}

// GetFeed 首页动态流
// GET /v1/clock-ins/feed
func GetFeed(ctx context.Context, c *app.RequestContext) {
	items, err := service.ClockIns().Feed(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, items)
}

// GetMyClockIns 我的打卡记录
// GET /v1/clock-ins/mine
func GetMyClockIns(ctx context.Context, c *app.RequestContext) {
	identity, ok := middleware.GetIdentity(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	var q dto.ListQuery
	if err := c.BindQuery(&q); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	items, err := service.ClockIns().Mine(ctx, identity, q)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, items, map[string]interface{}{
		"limit":  q.Limit,
		"offset": q.Offset,
		"count":  len(items),
	})
}
