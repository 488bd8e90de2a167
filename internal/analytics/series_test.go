package analytics

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DakaCamp/internal/model"
)

func TestBucketByDayGroupsAndSorts(t *testing.T) {
	// 乱序输入：6-03 两条、6-01 一条、6-10 一条
	events := []Event{
		testEvent(1, 1, 2, model.CategoryDaily),
		testEvent(2, 1, 0, model.CategoryDaily),
		testEvent(3, 2, 2, model.CategoryStudy),
		testEvent(4, 2, 9, model.CategoryDaily),
	}

	buckets := BucketByDay(events)

	require.Len(t, buckets, 3)
	assert.Equal(t, Bucket{Label: "06-01", Count: 1}, buckets[0])
	assert.Equal(t, Bucket{Label: "06-03", Count: 2}, buckets[1])
	assert.Equal(t, Bucket{Label: "06-10", Count: 1}, buckets[2])

	// 零填充标签的字典序等价于时间序
	labels := []string{buckets[0].Label, buckets[1].Label, buckets[2].Label}
	assert.True(t, sort.StringsAreSorted(labels))
}

// 同一自然日不同时刻落同一个桶
func TestBucketByDaySameDayDifferentHours(t *testing.T) {
	morning := testEvent(1, 1, 0, model.CategoryDaily)
	evening := testEvent(2, 1, 0, model.CategoryDaily)
	evening.SubmittedAt = evening.SubmittedAt.Add(9 * time.Hour)

	buckets := BucketByDay([]Event{morning, evening})

	require.Len(t, buckets, 1)
	assert.Equal(t, 2, buckets[0].Count)
}

func TestBucketByDayEmptyAndBrokenInput(t *testing.T) {
	assert.Empty(t, BucketByDay(nil))

	broken := testEvent(1, 1, 0, model.CategoryDaily)
	broken.SubmittedAt = time.Time{}
	assert.Empty(t, BucketByDay([]Event{broken}))
}

// 缺打卡的日期不补零桶
func TestBucketByDayNoZeroFill(t *testing.T) {
	events := []Event{
		testEvent(1, 1, 0, model.CategoryDaily),
		testEvent(2, 1, 5, model.CategoryDaily),
	}

	buckets := BucketByDay(events)

	require.Len(t, buckets, 2)
	assert.Equal(t, "06-01", buckets[0].Label)
	assert.Equal(t, "06-06", buckets[1].Label)
}
