// Package stats reduces one fetched page of feedback into the numbers the
// dashboard shows.
package stats

import (
	"fmt"
	"math"

	"pulse/internal/store"
)

// AvgUnavailable is reported when no record on the page carries an overall
// rating. It is deliberately not "0.0": no data is not the lowest score.
const AvgUnavailable = "unavailable"

type Summary struct {
	TotalResponses  int64  `json:"total_responses"`
	AvgSatisfaction string `json:"avg_satisfaction"`
	TimeSavedRate   int    `json:"time_saved_rate"`
}

// Summarize computes display statistics over a single page of items. total is
// the full-table count supplied by the listing, not len(items), so the
// response count stays correct whatever page is being summarized.
func Summarize(items []store.Feedback, total int64) Summary {
	summary := Summary{
		TotalResponses:  total,
		AvgSatisfaction: AvgUnavailable,
	}

	var ratingSum, rated int
	var timeSavedYes, timeSavedAnswered int

	for _, f := range items {
		if f.OverallSatisfaction != nil {
			ratingSum += int(*f.OverallSatisfaction)
			rated++
		}
		if f.TimeSaved != nil {
			timeSavedAnswered++
			if *f.TimeSaved {
				timeSavedYes++
			}
		}
	}

	if rated > 0 {
		avg := math.Round(float64(ratingSum)/float64(rated)*10) / 10
		summary.AvgSatisfaction = fmt.Sprintf("%.1f", avg)
	}
	if timeSavedAnswered > 0 {
		summary.TimeSavedRate = int(math.Round(float64(timeSavedYes) / float64(timeSavedAnswered) * 100))
	}

	return summary
}
