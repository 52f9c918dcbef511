package stats

import (
	"testing"

	"pulse/internal/store"

	"github.com/stretchr/testify/assert"
)

func ratingPtr(n int16) *int16 { return &n }
func boolPtr(b bool) *bool { return &b }

func TestSummarizeEmptyPage(t *testing.T) {
	summary := Summarize(nil, 0)

	assert.Equal(t, int64(0), summary.TotalResponses)
	assert.Equal(t, AvgUnavailable, summary.AvgSatisfaction)
	assert.Equal(t, 0, summary.TimeSavedRate)
}

func TestSummarizeSingleRecord(t *testing.T) {
	items := []store.Feedback{
		{OverallSatisfaction: ratingPtr(5), TimeSaved: boolPtr(true)},
	}

	summary := Summarize(items, 1)

	assert.Equal(t, int64(1), summary.TotalResponses)
	assert.Equal(t, "5.0", summary.AvgSatisfaction)
	assert.Equal(t, 100, summary.TimeSavedRate)
}

func TestSummarizeAverageRounding(t *testing.T) {
	items := []store.Feedback{
		{OverallSatisfaction: ratingPtr(1)},
		{OverallSatisfaction: ratingPtr(2)},
		{OverallSatisfaction: ratingPtr(2)},
	}

	summary := Summarize(items, 3)

	// 5/3 = 1.666..., one decimal place
	assert.Equal(t, "1.7", summary.AvgSatisfaction)
}

func TestSummarizeSkipsUnratedRecords(t *testing.T) {
	items := []store.Feedback{
		{OverallSatisfaction: ratingPtr(4)},
		{}, // comment-only record
		{OverallSatisfaction: ratingPtr(5)},
	}

	summary := Summarize(items, 10)

	assert.Equal(t, int64(10), summary.TotalResponses)
	assert.Equal(t, "4.5", summary.AvgSatisfaction)
}

func TestSummarizeAllUnrated(t *testing.T) {
	items := []store.Feedback{{}, {}}

	summary := Summarize(items, 2)

	assert.Equal(t, AvgUnavailable, summary.AvgSatisfaction)
}

func TestSummarizeTimeSavedRate(t *testing.T) {
	tests := []struct {
		name  string
		items []store.Feedback
		want  int
	}{
		{
			name: "half answered yes",
			items: []store.Feedback{
				{TimeSaved: boolPtr(true)},
				{TimeSaved: boolPtr(false)},
			},
			want: 50,
		},
		{
			name: "unanswered excluded from denominator",
			items: []store.Feedback{
				{TimeSaved: boolPtr(true)},
				{TimeSaved: boolPtr(true)},
				{}, // unanswered, not a no
			},
			want: 100,
		},
		{
			name: "rounded to nearest percent",
			items: []store.Feedback{
				{TimeSaved: boolPtr(true)},
				{TimeSaved: boolPtr(true)},
				{TimeSaved: boolPtr(false)},
			},
			want: 67,
		},
		{
			name:  "nobody answered",
			items: []store.Feedback{{}, {}},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.items, int64(len(tt.items)))
			assert.Equal(t, tt.want, summary.TimeSavedRate)
		})
	}
}

func TestSummarizeTotalIsCallerSupplied(t *testing.T) {
	items := []store.Feedback{{OverallSatisfaction: ratingPtr(3)}}

	// total reflects the whole table, not the fetched page
	summary := Summarize(items, 250)

	assert.Equal(t, int64(250), summary.TotalResponses)
}
