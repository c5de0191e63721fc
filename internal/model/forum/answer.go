package forum

import "time"

// Answer belongs to exactly one question. A non-nil ParentID marks it as a
// reply to another answer; the board renders at most one level of such
// nesting.
type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	Text       string    `json:"text"`
	ParentID   *int64    `json:"parent_id"`
	CreatedAt  time.Time `json:"created_at"`
}
