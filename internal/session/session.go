package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	forumservice "github.com/qnaboard/backend/internal/service/forum"
	"github.com/qnaboard/backend/internal/store"
)

var (
	ErrSessionClosed = errors.New("session closed")
	ErrAlreadyActive = errors.New("session already active")
)

// State tracks a session's position in its lifecycle.
type State int

const (
	StateConnecting State = iota
	StateActive
	StateClosed
)

// Session drives one client connection's protocol lifecycle: Connecting on
// construction, Active after Connect, Closed after Disconnect. It holds no
// durable state of its own; every reply is computed against the store.
//
// A Session is not safe for concurrent use. The transport must deliver
// events sequentially, which matches the one-reader-loop-per-connection
// model of the websocket handler.
type Session struct {
	store     store.Store
	paginator forumservice.Paginator
	assembler forumservice.Assembler
	state     State
}

// New returns a session in the Connecting state.
func New(st store.Store, pageSize int) *Session {
	return &Session{
		store:     st,
		paginator: forumservice.NewPaginator(pageSize),
		assembler: forumservice.NewAssembler(st),
		state:     StateConnecting,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Connect moves the session to Active and returns the initial load: the
// first page of the question tree plus the total page count.
func (s *Session) Connect(ctx context.Context) (any, error) {
	switch s.state {
	case StateActive:
		return nil, ErrAlreadyActive
	case StateClosed:
		return nil, ErrSessionClosed
	}

	s.state = StateActive
	return s.loadPage(ctx, StatusLoaded, 1)
}

// Disconnect moves the session to Closed. No further events are processed.
func (s *Session) Disconnect() {
	s.state = StateClosed
}

// Handle processes one inbound text message and returns the single reply
// to send back. Exactly one branch runs per message; an error return means
// a store failure, which the caller surfaces as an internal-error status
// without closing the session.
func (s *Session) Handle(ctx context.Context, raw []byte) (any, error) {
	if s.state != StateActive {
		return nil, ErrSessionClosed
	}

	var msg inbound
	if err := json.Unmarshal(raw, &msg); err != nil {
		return StatusReply{Status: StatusUnrecognized}, nil
	}

	switch {
	case msg.Question != nil:
		return s.createQuestion(ctx, *msg.Question)
	case msg.Response != nil && msg.QuestionID != nil:
		return s.createAnswer(ctx, msg)
	case msg.ResponseToResponse != nil && msg.ResponseToResponseID != nil:
		return s.createSubResponse(ctx, msg)
	case msg.Page != nil:
		return s.loadPage(ctx, StatusPageLoaded, *msg.Page)
	default:
		return StatusReply{Status: StatusUnrecognized}, nil
	}
}

// createQuestion stores a new question and replies with the refreshed
// first page.
func (s *Session) createQuestion(ctx context.Context, text string) (any, error) {
	if _, err := s.store.CreateQuestion(ctx, text); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return s.loadPage(ctx, StatusQuestionSaved, 1)
}

// createAnswer stores an answer to a question. A named parent that does
// not exist is treated as no parent, not as an error.
func (s *Session) createAnswer(ctx context.Context, msg inbound) (any, error) {
	questionID := *msg.QuestionID

	exists, err := s.store.QuestionExists(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("check question %d: %w", questionID, err)
	}
	if !exists {
		return StatusReply{Status: StatusInvalidQuestion}, nil
	}

	parentID := msg.ParentResponseID
	if parentID != nil {
		if _, err := s.store.GetAnswer(ctx, *parentID); err != nil {
			if !errors.Is(err, store.ErrAnswerNotFound) {
				return nil, fmt.Errorf("resolve parent %d: %w", *parentID, err)
			}
			parentID = nil
		}
	}

	answer, err := s.store.CreateAnswer(ctx, questionID, *msg.Response, parentID)
	if err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}

	return AnswerReply{
		Status:           StatusResponseReceived,
		Response:         answer.Text,
		QuestionID:       questionID,
		ParentResponseID: parentID,
	}, nil
}

// createSubResponse stores a reply to an existing answer. Unlike
// createAnswer, a missing parent here is an error.
func (s *Session) createSubResponse(ctx context.Context, msg inbound) (any, error) {
	if msg.QuestionID == nil || msg.ResponseID == nil {
		return StatusReply{Status: StatusUnrecognized}, nil
	}
	questionID := *msg.QuestionID
	responseID := *msg.ResponseID

	exists, err := s.store.AnswerExists(ctx, responseID)
	if err != nil {
		return nil, fmt.Errorf("check answer %d: %w", responseID, err)
	}
	if !exists {
		return StatusReply{Status: StatusInvalidResponse}, nil
	}

	exists, err = s.store.QuestionExists(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("check question %d: %w", questionID, err)
	}
	if !exists {
		return StatusReply{Status: StatusInvalidQuestion}, nil
	}

	if _, err := s.store.CreateAnswer(ctx, questionID, *msg.ResponseToResponse, &responseID); err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}

	return SubResponseReply{
		Status:               StatusReplyReceived,
		ResponseToResponse:   *msg.ResponseToResponse,
		QuestionID:           questionID,
		ResponseID:           responseID,
		ResponseToResponseID: *msg.ResponseToResponseID,
	}, nil
}

// loadPage hydrates the requested page and reports the total page count.
func (s *Session) loadPage(ctx context.Context, status string, page int) (any, error) {
	questions, err := s.store.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	slice, err := s.paginator.Page(questions, page)
	if err != nil {
		if errors.Is(err, forumservice.ErrPageOutOfRange) {
			return StatusReply{Status: StatusInvalidPage}, nil
		}
		return nil, err
	}

	trees, err := s.assembler.Assemble(ctx, slice)
	if err != nil {
		return nil, fmt.Errorf("assemble page %d: %w", page, err)
	}

	return TreeReply{
		Status:     status,
		Questions:  trees,
		TotalPages: s.paginator.TotalPages(len(questions)),
	}, nil
}
