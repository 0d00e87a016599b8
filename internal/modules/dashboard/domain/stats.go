package domain

// Stats is the headline counters card row.
type Stats struct {
	NotesUploaded      int
	FlashcardsMastered int
	FlashcardsTotal    int
	QuizzesTaken       int
	WeekStudyMinutes   int
	RecentActivity     []Activity
}

type Activity struct {
	Kind    string
	Subject string
	When    string
}

// Analytics is the chart data for the trailing window.
type Analytics struct {
	DailyStudy        []DayMinutes
	ActivityBreakdown []KindCount
	PerformanceTrend  []DayAccuracy
	SubjectStats      []KindCount
}

type DayMinutes struct {
	Day     string
	Minutes int
}

type KindCount struct {
	Label string
	Count int
}

type DayAccuracy struct {
	Day      string
	Accuracy float64
}
