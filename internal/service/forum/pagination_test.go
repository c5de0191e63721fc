package forum_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/qnaboard/backend/internal/model/forum"
	forumservice "github.com/qnaboard/backend/internal/service/forum"
)

func makeQuestions(n int) []forum.Question {
	questions := make([]forum.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, forum.Question{
			ID:   int64(i + 1),
			Text: fmt.Sprintf("question %d", i+1),
		})
	}
	return questions
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		pageSize int
		count    int
		want     int
	}{
		{3, 0, 1},
		{3, 1, 1},
		{3, 3, 1},
		{3, 4, 2},
		{3, 6, 2},
		{3, 7, 3},
		{1, 5, 5},
		{10, 5, 1},
	}

	for _, tc := range cases {
		p := forumservice.NewPaginator(tc.pageSize)
		if got := p.TotalPages(tc.count); got != tc.want {
			t.Fatalf("TotalPages(%d) with size %d: got %d want %d", tc.count, tc.pageSize, got, tc.want)
		}
	}
}

func TestPageOneAlwaysValid(t *testing.T) {
	p := forumservice.NewPaginator(3)

	for _, n := range []int{0, 1, 3, 4, 10} {
		slice, err := p.Page(makeQuestions(n), 1)
		if err != nil {
			t.Fatalf("page 1 of %d questions: %v", n, err)
		}
		want := n
		if want > 3 {
			want = 3
		}
		if len(slice) != want {
			t.Fatalf("page 1 of %d questions: got %d want %d", n, len(slice), want)
		}
	}
}

func TestPageSlicing(t *testing.T) {
	p := forumservice.NewPaginator(3)
	questions := makeQuestions(4)

	page1, err := p.Page(questions, 1)
	if err != nil {
		t.Fatalf("page 1 err: %v", err)
	}
	if len(page1) != 3 || page1[0].ID != 1 || page1[2].ID != 3 {
		t.Fatalf("unexpected page 1: %+v", page1)
	}

	page2, err := p.Page(questions, 2)
	if err != nil {
		t.Fatalf("page 2 err: %v", err)
	}
	if len(page2) != 1 || page2[0].ID != 4 {
		t.Fatalf("unexpected page 2: %+v", page2)
	}

	if p.TotalPages(len(questions)) != 2 {
		t.Fatalf("expected 2 total pages, got %d", p.TotalPages(len(questions)))
	}
}

func TestPageOutOfRange(t *testing.T) {
	p := forumservice.NewPaginator(3)
	questions := makeQuestions(4)

	for _, page := range []int{0, -1, 3, 100} {
		if _, err := p.Page(questions, page); !errors.Is(err, forumservice.ErrPageOutOfRange) {
			t.Fatalf("page %d: expected ErrPageOutOfRange, got %v", page, err)
		}
	}
}

func TestPaginatorClampsPageSize(t *testing.T) {
	p := forumservice.NewPaginator(0)
	if p.PageSize() != 1 {
		t.Fatalf("expected page size 1, got %d", p.PageSize())
	}
}
