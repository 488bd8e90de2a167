package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"DakaCamp/config"
	"DakaCamp/internal/middleware"
	"DakaCamp/internal/model/dto"
	"DakaCamp/internal/service"
	pkgerrors "DakaCamp/pkg/errors"
	"DakaCamp/pkg/response"
)

// ListAnnouncements 公告列表
// GET /v1/announcements?limit=3
// limit 缺省取配置值，显式传 0 表示不截断
func ListAnnouncements(ctx context.Context, c *app.RequestContext) {
	limit, ok := listLimit(c.Query("limit"), config.Cfg.AnnouncementLimit)
	if !ok {
		response.Error(ctx, c, pkgerrors.InvalidRequest)
		return
	}

	items, err := service.Announcements().List(ctx, limit)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, items)
}

// GetAnnouncement 公告详情
// GET /v1/announcements/:id
func GetAnnouncement(ctx context.Context, c *app.RequestContext) {
	publicID, ok := announcementID(ctx, c)
	if !ok {
		return
	}

	data, err := service.Announcements().Get(ctx, publicID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, data)
}

// CreateAnnouncement 发布公告
// POST /v1/announcements
func CreateAnnouncement(ctx context.Context, c *app.RequestContext) {
	identity, ok := middleware.GetIdentity(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.Announcements().Create(ctx, identity, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, data)
}

// UpdateAnnouncement 编辑公告
// PUT /v1/announcements/:id
func UpdateAnnouncement(ctx context.Context, c *app.RequestContext) {
	identity, ok := middleware.GetIdentity(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	publicID, ok := announcementID(ctx, c)
	if !ok {
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.Announcements().Update(ctx, identity, publicID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, data)
}

// DeleteAnnouncement 删除公告
// DELETE /v1/announcements/:id
func DeleteAnnouncement(ctx context.Context, c *app.RequestContext) {
	identity, ok := middleware.GetIdentity(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	publicID, ok := announcementID(ctx, c)
	if !ok {
		return
	}

	if err := service.Announcements().Delete(ctx, identity, publicID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// listLimit 解析列表条数参数，缺省回退到 def
func listLimit(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}

func announcementID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	raw := c.Param("id")
	publicID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || publicID <= 0 {
		response.Error(ctx, c, pkgerrors.InvalidRequest)
		return 0, false
	}
	return publicID, true
}
