package dto

// CardView is the flashcard under the cursor, with its session-local review
// counters. TotalReviews and TotalCorrect are the server's lifetime counters
// for the card; they are display-only and lag behind until the next load.
type CardView struct {
	Index        int
	Prompt       string
	Reveal       string
	Revealed     bool
	Difficulty   string
	Attempts     int
	Correct      int
	Accuracy     int
	TotalReviews int
	TotalCorrect int
}

// QuestionView is the quiz question under the cursor.
type QuestionView struct {
	Index    int
	Prompt   string
	Choices  []string
	Selected int
}

// SessionOutput is a render-ready snapshot of the session. Exactly one of
// Card/Question is set while items are loaded, matching the session kind.
type SessionOutput struct {
	Kind     string
	Status   string
	Total    int
	Cursor   int
	Progress float64
	Elapsed  int
	Answered []bool
	Card     *CardView
	Question *QuestionView
}

// ReviewOutput reports a recorded flashcard outcome. The local phase has
// always been applied by the time this is returned; SyncErr carries a failed
// remote acknowledgment without rolling anything back.
type ReviewOutput struct {
	Session  SessionOutput
	Attempts int
	Correct  int
	Accuracy int
	Advanced bool
	Finished bool
	SyncErr  string
}

// QuestionResult is one question of a submitted quiz with the server verdict.
type QuestionResult struct {
	Prompt        string
	Choices       []string
	Selected      int
	CorrectChoice int
	Correct       bool
	Explanation   string
}

// ResultOutput is the authoritative result snapshot of a submitted quiz.
type ResultOutput struct {
	Score          float64
	CorrectCount   int
	TotalQuestions int
	ElapsedSeconds int
	Questions      []QuestionResult
}
