package store

import (
	"context"
	"sync"
	"time"

	"github.com/qnaboard/backend/internal/model/forum"
)

// MemoryStore implements Store with mutex-guarded slices, suitable for
// tests and local development without a database.
type MemoryStore struct {
	mu             sync.RWMutex
	nextQuestionID int64
	nextAnswerID   int64
	questions      []forum.Question
	answers        []forum.Answer
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// CreateQuestion persists a question and assigns the next identifier.
func (s *MemoryStore) CreateQuestion(_ context.Context, text string) (forum.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextQuestionID++
	question := forum.Question{
		ID:        s.nextQuestionID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	s.questions = append(s.questions, question)
	return question, nil
}

// Questions returns every question in insertion order.
func (s *MemoryStore) Questions(_ context.Context) ([]forum.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]forum.Question, len(s.questions))
	copy(copied, s.questions)
	return copied, nil
}

// QuestionExists reports whether a question with the given id exists.
func (s *MemoryStore) QuestionExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.questions {
		if q.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// CreateAnswer persists an answer after verifying its references.
func (s *MemoryStore) CreateAnswer(_ context.Context, questionID int64, text string, parentID *int64) (forum.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.questionExistsLocked(questionID) {
		return forum.Answer{}, ErrQuestionNotFound
	}
	if parentID != nil && !s.answerExistsLocked(*parentID) {
		return forum.Answer{}, ErrAnswerNotFound
	}

	s.nextAnswerID++
	answer := forum.Answer{
		ID:         s.nextAnswerID,
		QuestionID: questionID,
		Text:       text,
		ParentID:   parentID,
		CreatedAt:  time.Now().UTC(),
	}
	s.answers = append(s.answers, answer)
	return answer, nil
}

// GetAnswer returns the answer with the given id.
func (s *MemoryStore) GetAnswer(_ context.Context, id int64) (forum.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.answers {
		if a.ID == id {
			return a, nil
		}
	}
	return forum.Answer{}, ErrAnswerNotFound
}

// AnswerExists reports whether an answer with the given id exists.
func (s *MemoryStore) AnswerExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.answerExistsLocked(id), nil
}

// AnswersByQuestion returns every answer for the question in insertion order.
func (s *MemoryStore) AnswersByQuestion(_ context.Context, questionID int64) ([]forum.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answers := make([]forum.Answer, 0)
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			answers = append(answers, a)
		}
	}
	return answers, nil
}

// RepliesTo returns every reply to the given answer in insertion order.
func (s *MemoryStore) RepliesTo(_ context.Context, answerID int64) ([]forum.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	replies := make([]forum.Answer, 0)
	for _, a := range s.answers {
		if a.ParentID != nil && *a.ParentID == answerID {
			replies = append(replies, a)
		}
	}
	return replies, nil
}

func (s *MemoryStore) questionExistsLocked(id int64) bool {
	for _, q := range s.questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

func (s *MemoryStore) answerExistsLocked(id int64) bool {
	for _, a := range s.answers {
		if a.ID == id {
			return true
		}
	}
	return false
}
