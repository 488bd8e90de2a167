package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DakaCamp/internal/analytics"
)

func TestWriteCSV(t *testing.T) {
	rows := []analytics.ExportRow{
		{
			DisplayName: "小明",
			Email:       "ming@example.com",
			Content:     "晨跑 5 公里",
			Category:    "exercise",
			EventDate:   "2025-06-01",
			SubmittedAt: "2025-06-01 07:30:00",
		},
		{
			DisplayName: "小红",
			Email:       "hong@example.com",
			Content:     "读完一章",
			Category:    "study",
			EventDate:   "",
			SubmittedAt: "",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "output should start with UTF-8 BOM")

	reader := csv.NewReader(bytes.NewReader(out[3:]))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"姓名", "邮箱", "打卡内容", "类型", "打卡日期", "提交时间"}, records[0])
	assert.Equal(t, []string{"小明", "ming@example.com", "晨跑 5 公里", "exercise", "2025-06-01", "2025-06-01 07:30:00"}, records[1])
	assert.Equal(t, []string{"小红", "hong@example.com", "读完一章", "study", "", ""}, records[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	// 只有 BOM 和表头
	content := strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	rows := []analytics.ExportRow{
		{DisplayName: "A", Email: "a@example.com", Content: "先跑步, 再看书", Category: "daily"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	reader := csv.NewReader(bytes.NewReader(buf.Bytes()[3:]))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "先跑步, 再看书", records[1][2])
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "clockins-20250601.csv", FileName(now))
}
