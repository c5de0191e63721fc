package store

import (
	"context"
	"errors"

	"github.com/qnaboard/backend/internal/model/forum"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
)

// Store is the persistence boundary for questions and answers. The store
// assigns identifiers (monotonic, never reused) and creation timestamps.
// Questions and Answers returned by listing methods preserve insertion
// order. Implementations must be safe for use from concurrent sessions.
type Store interface {
	// CreateQuestion persists a question and returns it with its assigned
	// identifier and timestamp.
	CreateQuestion(ctx context.Context, text string) (forum.Question, error)

	// Questions returns every question in insertion order.
	Questions(ctx context.Context) ([]forum.Question, error)

	// QuestionExists reports whether a question with the given id exists.
	QuestionExists(ctx context.Context, id int64) (bool, error)

	// CreateAnswer persists an answer to the given question. A non-nil
	// parentID marks the answer as a reply; both the question and the
	// parent must already exist or ErrQuestionNotFound / ErrAnswerNotFound
	// is returned.
	CreateAnswer(ctx context.Context, questionID int64, text string, parentID *int64) (forum.Answer, error)

	// GetAnswer returns the answer with the given id, or ErrAnswerNotFound.
	GetAnswer(ctx context.Context, id int64) (forum.Answer, error)

	// AnswerExists reports whether an answer with the given id exists.
	AnswerExists(ctx context.Context, id int64) (bool, error)

	// AnswersByQuestion returns every answer attached to the question,
	// replies included, in insertion order.
	AnswersByQuestion(ctx context.Context, questionID int64) ([]forum.Answer, error)

	// RepliesTo returns every answer whose parent is the given answer, in
	// insertion order.
	RepliesTo(ctx context.Context, answerID int64) ([]forum.Answer, error)
}
