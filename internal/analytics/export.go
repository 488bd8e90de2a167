package analytics

// ExportRow 导出表格的一行，字段已拍平成表格需要的形状
// 不做筛选不做排序，给什么顺序导什么顺序；文件序列化由导出器负责
type ExportRow struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	EventDate   string `json:"event_date"`   // 2006-01-02
	SubmittedAt string `json:"submitted_at"` // 2006-01-02 15:04:05
}

const (
	exportDateLayout     = "2006-01-02"
	exportDateTimeLayout = "2006-01-02 15:04:05"
)

// ToExportRows 把事件序列规整成导出行
func ToExportRows(filtered []Event) []ExportRow {
	rows := make([]ExportRow, 0, len(filtered))
	for _, e := range filtered {
		row := ExportRow{
			DisplayName: e.UserDisplayName,
			Email:       e.UserEmail,
			Content:     e.Content,
			Category:    string(e.Category),
		}
		if !e.EventDate.IsZero() {
			row.EventDate = e.EventDate.Format(exportDateLayout)
		}
		if !e.SubmittedAt.IsZero() {
			row.SubmittedAt = e.SubmittedAt.Format(exportDateTimeLayout)
		}
		rows = append(rows, row)
	}
	return rows
}
