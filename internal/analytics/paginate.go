package analytics

import (
	"sort"
)

// PageResult 分页结果
type PageResult struct {
	Items      []Event `json:"items"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	TotalCount int     `json:"total_count"`
}

// Paginate 按提交时间倒序后切页
// 空集也返回 1 页，方便界面渲染空首页；越界页码返回空 items 不报错
func Paginate(filtered []Event, page, pageSize int) PageResult {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	sorted := make([]Event, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SubmittedAt.Equal(sorted[j].SubmittedAt) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].SubmittedAt.After(sorted[j].SubmittedAt)
	})

	totalCount := len(sorted)
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start >= totalCount {
		return PageResult{
			Items:      []Event{},
			Page:       page,
			TotalPages: totalPages,
			TotalCount: totalCount,
		}
	}

	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	return PageResult{
		Items:      sorted[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalCount: totalCount,
	}
}
