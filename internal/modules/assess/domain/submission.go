package domain

// Submission is the payload of a terminal quiz submit: the quiz identifier,
// the ordered selected-choice indices, and the elapsed time.
type Submission struct {
	QuizID         string
	Selections     []int
	ElapsedSeconds int
}
