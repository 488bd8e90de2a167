package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"DakaCamp/internal/analytics"
)

// CSV 导出器：表头固定，一事件一行，顺序由调用方给定
// Excel 直开中文表头需要 BOM 前缀

var csvHeader = []string{"姓名", "邮箱", "打卡内容", "类型", "打卡日期", "提交时间"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV 把导出行序列化成 CSV 写入 w
func WriteCSV(w io.Writer, rows []analytics.ExportRow) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.DisplayName,
			row.Email,
			row.Content,
			row.Category,
			row.EventDate,
			row.SubmittedAt,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// FileName 导出文件名，按导出当天打日期戳
func FileName(now time.Time) string {
	return fmt.Sprintf("clockins-%s.csv", now.Format("20060102"))
}
