package session

import "github.com/qnaboard/backend/internal/model/forum"

// Reply statuses, one per protocol outcome. The strings are part of the
// wire contract and must not change.
const (
	StatusLoaded           = "Loaded questions"
	StatusQuestionSaved    = "Question saved"
	StatusResponseReceived = "Response received"
	StatusReplyReceived    = "Response to response received"
	StatusPageLoaded       = "Page loaded"
	StatusInvalidQuestion  = "Invalid question ID"
	StatusInvalidResponse  = "Invalid response ID"
	StatusInvalidPage      = "Invalid page number"
	StatusUnrecognized     = "Unrecognized message"
	StatusInternalError    = "Internal error"
)

// inbound is the union of all recognized client message shapes; field
// presence selects the operation, checked in dispatch priority order.
type inbound struct {
	Question             *string `json:"question"`
	Response             *string `json:"response"`
	QuestionID           *int64  `json:"question_id"`
	ParentResponseID     *int64  `json:"parent_response_id"`
	ResponseToResponse   *string `json:"response_to_response"`
	ResponseToResponseID *int64  `json:"response_to_response_id"`
	ResponseID           *int64  `json:"response_id"`
	Page                 *int    `json:"page"`
}

// TreeReply carries a hydrated page of questions. Questions is never nil
// so an empty page serializes as [].
type TreeReply struct {
	Status     string               `json:"status"`
	Questions  []forum.QuestionTree `json:"questions"`
	TotalPages int                  `json:"total_pages"`
}

// AnswerReply echoes a stored answer back to its sender. ParentResponseID
// is the parent actually used: null when no (or no existing) parent was
// named.
type AnswerReply struct {
	Status           string `json:"status"`
	Response         string `json:"response"`
	QuestionID       int64  `json:"question_id"`
	ParentResponseID *int64 `json:"parent_response_id"`
}

// SubResponseReply echoes a stored reply-to-reply back to its sender.
// ResponseToResponseID is the client's own correlation id, returned as
// received.
type SubResponseReply struct {
	Status               string `json:"status"`
	ResponseToResponse   string `json:"response_to_response"`
	QuestionID           int64  `json:"question_id"`
	ResponseID           int64  `json:"response_id"`
	ResponseToResponseID int64  `json:"response_to_response_id"`
}

// StatusReply carries a bare status, used for protocol-level errors.
type StatusReply struct {
	Status string `json:"status"`
}
