package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qnaboard/backend/internal/model/forum"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id BIGSERIAL PRIMARY KEY,
    text TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS answers (
    id BIGSERIAL PRIMARY KEY,
    question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    parent_id BIGINT REFERENCES answers(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_answers_on_question_id ON answers(question_id);
CREATE INDEX IF NOT EXISTS idx_answers_on_parent_id ON answers(parent_id);
`

// PostgresStore implements Store on a pgx connection pool. BIGSERIAL
// sequences guarantee identifiers are never reused.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and verifies the connection.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Migrate creates the tables if they do not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schema)
	return err
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// CreateQuestion persists a question and returns the stored row.
func (s *PostgresStore) CreateQuestion(ctx context.Context, text string) (forum.Question, error) {
	question := forum.Question{Text: text}
	query := `INSERT INTO questions (text) VALUES ($1) RETURNING id, created_at`
	err := s.pool.QueryRow(ctx, query, text).Scan(&question.ID, &question.CreatedAt)
	if err != nil {
		return forum.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return question, nil
}

// Questions returns every question in insertion order.
func (s *PostgresStore) Questions(ctx context.Context) ([]forum.Question, error) {
	query := `SELECT id, text, created_at FROM questions ORDER BY id ASC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]forum.Question, 0)
	for rows.Next() {
		var q forum.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// QuestionExists reports whether a question with the given id exists.
func (s *PostgresStore) QuestionExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM questions WHERE id = $1)`
	err := s.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

// CreateAnswer persists an answer; foreign keys enforce that the question
// and the optional parent exist.
func (s *PostgresStore) CreateAnswer(ctx context.Context, questionID int64, text string, parentID *int64) (forum.Answer, error) {
	answer := forum.Answer{QuestionID: questionID, Text: text, ParentID: parentID}
	query := `INSERT INTO answers (question_id, text, parent_id) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := s.pool.QueryRow(ctx, query, questionID, text, parentID).Scan(&answer.ID, &answer.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "answers_parent_id_fkey" {
				return forum.Answer{}, ErrAnswerNotFound
			}
			return forum.Answer{}, ErrQuestionNotFound
		}
		return forum.Answer{}, fmt.Errorf("insert answer: %w", err)
	}
	return answer, nil
}

// GetAnswer returns the answer with the given id.
func (s *PostgresStore) GetAnswer(ctx context.Context, id int64) (forum.Answer, error) {
	var a forum.Answer
	query := `SELECT id, question_id, text, parent_id, created_at FROM answers WHERE id = $1`
	err := s.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.QuestionID, &a.Text, &a.ParentID, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return forum.Answer{}, ErrAnswerNotFound
	}
	if err != nil {
		return forum.Answer{}, err
	}
	return a, nil
}

// AnswerExists reports whether an answer with the given id exists.
func (s *PostgresStore) AnswerExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM answers WHERE id = $1)`
	err := s.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

// AnswersByQuestion returns every answer for the question in insertion order.
func (s *PostgresStore) AnswersByQuestion(ctx context.Context, questionID int64) ([]forum.Answer, error) {
	query := `SELECT id, question_id, text, parent_id, created_at FROM answers
              WHERE question_id = $1
              ORDER BY id ASC`
	return s.queryAnswers(ctx, query, questionID)
}

// RepliesTo returns every reply to the given answer in insertion order.
func (s *PostgresStore) RepliesTo(ctx context.Context, answerID int64) ([]forum.Answer, error) {
	query := `SELECT id, question_id, text, parent_id, created_at FROM answers
              WHERE parent_id = $1
              ORDER BY id ASC`
	return s.queryAnswers(ctx, query, answerID)
}

func (s *PostgresStore) queryAnswers(ctx context.Context, query string, arg any) ([]forum.Answer, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make([]forum.Answer, 0)
	for rows.Next() {
		var a forum.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Text, &a.ParentID, &a.CreatedAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}
