package out

import "context"

// Asker sends one grounded question to the remote assistant and returns its
// answer.
type Asker interface {
	Ask(ctx context.Context, noteID, question string) (string, error)
}
