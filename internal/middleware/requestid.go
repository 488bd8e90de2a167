package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware 给每个请求分配追踪用的请求 ID
// 上游带了就透传，没带就生成
func RequestIDMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		requestID := string(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		c.Next(ctx)
	}
}

// GetRequestID 取当前请求的请求 ID
func GetRequestID(c *app.RequestContext) string {
	return c.GetString("request_id")
}
