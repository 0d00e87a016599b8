package out

import (
	"context"
	"fmt"

	"studyhall/internal/modules/dashboard/domain"
	dashout "studyhall/internal/modules/dashboard/port/out"
	"studyhall/internal/platform/httpapi"
)

type statsWire struct {
	NotesUploaded      int `json:"notesUploaded"`
	FlashcardsMastered int `json:"flashcardsMastered"`
	FlashcardsTotal    int `json:"flashcardsTotal"`
	QuizzesTaken       int `json:"quizzesTaken"`
	WeekStudyTime      int `json:"weekStudyTime"`
	RecentActivity     []struct {
		Type      string `json:"type"`
		Subject   string `json:"subject"`
		CreatedAt string `json:"createdAt"`
	} `json:"recentActivity"`
}

// The aggregation pipelines key their buckets under "_id": a date for the
// time series, a category label for the breakdowns.
type analyticsWire struct {
	DailyStats []struct {
		Day      string `json:"_id"`
		Duration int    `json:"duration"`
	} `json:"dailyStats"`
	ActivityBreakdown []struct {
		Label string `json:"_id"`
		Count int    `json:"count"`
	} `json:"activityBreakdown"`
	PerformanceTrends []struct {
		Day         string  `json:"_id"`
		AvgAccuracy float64 `json:"avgAccuracy"`
	} `json:"performanceTrends"`
	SubjectStats []struct {
		Label string `json:"_id"`
		Count int    `json:"count"`
	} `json:"subjectStats"`
}

type HTTPDashboard struct {
	api *httpapi.Client
}

var _ dashout.Source = (*HTTPDashboard)(nil)

func NewHTTPDashboard(api *httpapi.Client) *HTTPDashboard {
	return &HTTPDashboard{api: api}
}

func (h *HTTPDashboard) Stats(ctx context.Context) (domain.Stats, error) {
	var wire struct {
		Stats statsWire `json:"stats"`
	}
	if err := h.api.Get(ctx, "/dashboard/stats", &wire); err != nil {
		return domain.Stats{}, err
	}
	stats := domain.Stats{
		NotesUploaded:      wire.Stats.NotesUploaded,
		FlashcardsMastered: wire.Stats.FlashcardsMastered,
		FlashcardsTotal:    wire.Stats.FlashcardsTotal,
		QuizzesTaken:       wire.Stats.QuizzesTaken,
		WeekStudyMinutes:   wire.Stats.WeekStudyTime,
	}
	for _, activity := range wire.Stats.RecentActivity {
		stats.RecentActivity = append(stats.RecentActivity, domain.Activity{
			Kind:    activity.Type,
			Subject: activity.Subject,
			When:    activity.CreatedAt,
		})
	}
	return stats, nil
}

func (h *HTTPDashboard) Analytics(ctx context.Context, days int) (domain.Analytics, error) {
	var wire struct {
		Analytics analyticsWire `json:"analytics"`
	}
	if err := h.api.Get(ctx, fmt.Sprintf("/dashboard/analytics?days=%d", days), &wire); err != nil {
		return domain.Analytics{}, err
	}
	var analytics domain.Analytics
	for _, day := range wire.Analytics.DailyStats {
		analytics.DailyStudy = append(analytics.DailyStudy, domain.DayMinutes{Day: day.Day, Minutes: day.Duration})
	}
	for _, item := range wire.Analytics.ActivityBreakdown {
		analytics.ActivityBreakdown = append(analytics.ActivityBreakdown, domain.KindCount{Label: item.Label, Count: item.Count})
	}
	for _, day := range wire.Analytics.PerformanceTrends {
		analytics.PerformanceTrend = append(analytics.PerformanceTrend, domain.DayAccuracy{Day: day.Day, Accuracy: day.AvgAccuracy})
	}
	for _, item := range wire.Analytics.SubjectStats {
		analytics.SubjectStats = append(analytics.SubjectStats, domain.KindCount{Label: item.Label, Count: item.Count})
	}
	return analytics, nil
}
