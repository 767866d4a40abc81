package query

import "context"

// Answerer phrases an answer from facts. intent.IntentModel satisfies it.
type Answerer interface {
	AnswerQuestion(ctx context.Context, question string, facts []string) (string, error)
}
