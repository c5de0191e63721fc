package forum

import (
	"context"
	"fmt"

	"github.com/qnaboard/backend/internal/model/forum"
	"github.com/qnaboard/backend/internal/store"
)

// Assembler hydrates pages of questions into nested response trees:
// question -> top-level answers -> one level of replies. Replies to a
// reply are stored but never rendered.
type Assembler struct {
	store store.Store
}

// NewAssembler returns an assembler backed by the given store.
func NewAssembler(st store.Store) Assembler {
	return Assembler{store: st}
}

// Assemble builds the tree for a page of questions. Each answer appears
// exactly once: replies render under their parent, not in the top-level
// response list. Ordering within each level follows the store.
func (a Assembler) Assemble(ctx context.Context, questions []forum.Question) ([]forum.QuestionTree, error) {
	trees := make([]forum.QuestionTree, 0, len(questions))
	for _, question := range questions {
		answers, err := a.store.AnswersByQuestion(ctx, question.ID)
		if err != nil {
			return nil, fmt.Errorf("answers for question %d: %w", question.ID, err)
		}

		responses := make([]forum.AnswerTree, 0, len(answers))
		for _, answer := range answers {
			if answer.ParentID != nil {
				continue
			}

			replies, err := a.store.RepliesTo(ctx, answer.ID)
			if err != nil {
				return nil, fmt.Errorf("replies to answer %d: %w", answer.ID, err)
			}

			leaves := make([]forum.AnswerLeaf, 0, len(replies))
			for _, reply := range replies {
				leaves = append(leaves, forum.AnswerLeaf{ID: reply.ID, Text: reply.Text})
			}

			responses = append(responses, forum.AnswerTree{
				ID:           answer.ID,
				Text:         answer.Text,
				ParentID:     answer.ParentID,
				SubResponses: leaves,
			})
		}

		trees = append(trees, forum.QuestionTree{
			ID:        question.ID,
			Text:      question.Text,
			Responses: responses,
		})
	}
	return trees, nil
}
