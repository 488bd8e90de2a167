package analytics

import (
	"time"

	"DakaCamp/internal/model"
)

// Event 统计引擎消费的打卡事件视图
// 用户姓名/邮箱是身份系统的冗余字段，引擎只读不校验
type Event struct {
	ID              int64
	UserID          int64
	UserDisplayName string
	UserEmail       string
	Content         string
	Category        model.ClockInCategory
	Images          []string
	EventDate       time.Time // 打卡归属的自然日，只比较到天
	SubmittedAt     time.Time // 提交时间戳，用于图表分桶和展示排序
}

// TimeWindow 统计时间窗口
type TimeWindow string

const (
	Window7Days  TimeWindow = "7d"
	Window30Days TimeWindow = "30d"
	WindowAll    TimeWindow = "all"
)

// Days 返回窗口天数，全部时间返回 0
func (w TimeWindow) Days() int {
	switch w {
	case Window7Days:
		return 7
	case Window30Days:
		return 30
	default:
		return 0
	}
}

// ParseTimeWindow 解析窗口参数，空值按全部时间处理
func ParseTimeWindow(s string) (TimeWindow, bool) {
	switch s {
	case "7d":
		return Window7Days, true
	case "30d":
		return Window30Days, true
	case "all", "":
		return WindowAll, true
	default:
		return WindowAll, false
	}
}

// CategoryAll 类型筛选的 "全部" 哨兵值
const CategoryAll = "all"

// AllUsers 用户范围的 "全部用户" 哨兵值
const AllUsers int64 = 0

// Criteria 筛选条件，三个维度相互独立，取交集
type Criteria struct {
	Window   TimeWindow
	Category string // CategoryAll 或具体打卡类型
	UserID   int64  // AllUsers 或具体用户
}

// ForAllUsers 是否为全部用户范围
func (c Criteria) ForAllUsers() bool {
	return c.UserID == AllUsers
}
