package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v5"

	"DakaCamp/config"
	pkgerrors "DakaCamp/pkg/errors"
	"DakaCamp/pkg/response"
)

// 登录和签发归外部身份服务，这里只校验 Bearer token 并取出身份
// claims 约定：sub 是用户对外 ID，name/email 是展示冗余字段

const (
	ctxUserIDKey    = "user_id"
	ctxUserNameKey  = "user_name"
	ctxUserEmailKey = "user_email"
)

// Identity 从 token 里取出的用户身份
type Identity struct {
	PublicID    int64
	DisplayName string
	Email       string
}

// AuthMiddleware 校验 Authorization: Bearer <token>
func AuthMiddleware() app.HandlerFunc {
	secret := []byte(config.Cfg.JWTSecret)

	return func(ctx context.Context, c *app.RequestContext) {
		raw := extractToken(c)
		if raw == "" {
			response.Error(ctx, c, pkgerrors.Unauthorized)
			c.Abort()
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			response.Error(ctx, c, pkgerrors.TokenInvalid)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(ctx, c, pkgerrors.TokenInvalid)
			c.Abort()
			return
		}

		identity, ok := identityFromClaims(claims)
		if !ok {
			response.Error(ctx, c, pkgerrors.TokenInvalid)
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, identity.PublicID)
		c.Set(ctxUserNameKey, identity.DisplayName)
		c.Set(ctxUserEmailKey, identity.Email)

		c.Next(ctx)
	}
}

func extractToken(c *app.RequestContext) string {
	header := string(c.GetHeader("Authorization"))
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func identityFromClaims(claims jwt.MapClaims) (Identity, bool) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, false
	}

	publicID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Identity{}, false
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return Identity{
		PublicID:    publicID,
		DisplayName: name,
		Email:       email,
	}, true
}

// GetIdentity 取当前请求的用户身份
func GetIdentity(ctx context.Context, c *app.RequestContext) (Identity, bool) {
	id, ok := c.Get(ctxUserIDKey)
	if !ok {
		return Identity{}, false
	}
	publicID, ok := id.(int64)
	if !ok {
		return Identity{}, false
	}
	return Identity{
		PublicID:    publicID,
		DisplayName: c.GetString(ctxUserNameKey),
		Email:       c.GetString(ctxUserEmailKey),
	}, true
}

// GetUserID 取当前请求的用户对外 ID
func GetUserID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	identity, ok := GetIdentity(ctx, c)
	if !ok {
		return 0, false
	}
	return identity.PublicID, true
}
