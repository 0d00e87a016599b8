package domain

// NoSelection marks a quiz item the user has not answered yet.
const NoSelection = -1

type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// Response is the per-item interaction state. Attempts and Correct accumulate
// across repeated reviews of the same card and across flashcard restarts;
// they are intentionally never deduplicated.
type Response struct {
	SelectedChoice int
	Outcome        Outcome
	Revealed       bool
	Attempts       int
	Correct        int
}

func newResponse() Response {
	return Response{SelectedChoice: NoSelection}
}

// Answered reports whether a quiz selection has been made.
func (r Response) Answered() bool {
	return r.SelectedChoice != NoSelection
}
