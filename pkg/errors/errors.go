package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	Unauthorized  = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	TokenInvalid  = Definition{Code: "TOKEN_INVALID", Message: "Token invalid or expired"}
	InvalidUserID = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
)

// 打卡模块错误。
var (
	ClockInNotFound        = Definition{Code: "CLOCK_IN_NOT_FOUND", Message: "Clock-in record not found"}
	ClockInContentRequired = Definition{Code: "CLOCK_IN_CONTENT_REQUIRED", Message: "Clock-in content required"}
	ClockInTooManyImages   = Definition{Code: "CLOCK_IN_TOO_MANY_IMAGES", Message: "Too many images attached"}
	ClockInCategoryInvalid = Definition{Code: "CLOCK_IN_CATEGORY_INVALID", Message: "Clock-in category invalid"}
	ClockInForbidden       = Definition{Code: "CLOCK_IN_FORBIDDEN", Message: "Only the author can modify a clock-in record"}
)

// 统计模块错误。
var (
	StatsWindowInvalid   = Definition{Code: "STATS_WINDOW_INVALID", Message: "Stats time window invalid"}
	StatsCategoryInvalid = Definition{Code: "STATS_CATEGORY_INVALID", Message: "Stats category invalid"}
	StatsUserNotFound    = Definition{Code: "STATS_USER_NOT_FOUND", Message: "Stats user not found"}
)

// 公告模块错误。
var (
	AnnouncementNotFound  = Definition{Code: "ANNOUNCEMENT_NOT_FOUND", Message: "Announcement not found"}
	AnnouncementForbidden = Definition{Code: "ANNOUNCEMENT_FORBIDDEN", Message: "Only the author can modify an announcement"}
)

// 通用错误。
var (
	InvalidRequest        = Definition{Code: "INVALID_REQUEST", Message: "Invalid request"}
	RateLimited           = Definition{Code: "RATE_LIMITED", Message: "Too many requests"}
	DatabaseConnectionNil = Definition{Code: "DATABASE_CONNECTION_NIL", Message: "Database connection is nil"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthorized.Code:           Unauthorized,
	TokenInvalid.Code:           TokenInvalid,
	InvalidUserID.Code:          InvalidUserID,
	ClockInNotFound.Code:        ClockInNotFound,
	ClockInContentRequired.Code: ClockInContentRequired,
	ClockInTooManyImages.Code:   ClockInTooManyImages,
	ClockInCategoryInvalid.Code: ClockInCategoryInvalid,
	ClockInForbidden.Code:       ClockInForbidden,
	StatsWindowInvalid.Code:     StatsWindowInvalid,
	StatsCategoryInvalid.Code:   StatsCategoryInvalid,
	StatsUserNotFound.Code:      StatsUserNotFound,
	AnnouncementNotFound.Code:   AnnouncementNotFound,
	AnnouncementForbidden.Code:  AnnouncementForbidden,
	InvalidRequest.Code:         InvalidRequest,
	RateLimited.Code:            RateLimited,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
