package forum

import (
	"errors"

	"github.com/qnaboard/backend/internal/model/forum"
)

// DefaultPageSize is the number of questions per page unless overridden
// by configuration.
const DefaultPageSize = 3

var ErrPageOutOfRange = errors.New("page number out of range")

// Paginator slices the ordered question collection into fixed-size pages.
// Pages are 1-based and the page size is fixed for the paginator's lifetime.
type Paginator struct {
	pageSize int
}

// NewPaginator returns a paginator with the given page size, clamped to a
// minimum of 1.
func NewPaginator(pageSize int) Paginator {
	if pageSize < 1 {
		pageSize = 1
	}
	return Paginator{pageSize: pageSize}
}

// PageSize returns the fixed page size.
func (p Paginator) PageSize() int {
	return p.pageSize
}

// TotalPages returns the page count for a collection of the given size.
// An empty collection still has one (empty) page.
func (p Paginator) TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + p.pageSize - 1) / p.pageSize
}

// Page returns the 1-based page slice of questions, or ErrPageOutOfRange
// when the page number falls outside [1, TotalPages].
func (p Paginator) Page(questions []forum.Question, page int) ([]forum.Question, error) {
	if page < 1 || page > p.TotalPages(len(questions)) {
		return nil, ErrPageOutOfRange
	}

	start := (page - 1) * p.pageSize
	end := start + p.pageSize
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end], nil
}
