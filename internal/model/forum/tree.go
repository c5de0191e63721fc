package forum

// QuestionTree is the wire form of a question hydrated with its answers.
type QuestionTree struct {
	ID        int64        `json:"id"`
	Text      string       `json:"text"`
	Responses []AnswerTree `json:"responses"`
}

// AnswerTree is a top-level answer plus its immediate replies.
type AnswerTree struct {
	ID           int64        `json:"id"`
	Text         string       `json:"text"`
	ParentID     *int64       `json:"parent_id"`
	SubResponses []AnswerLeaf `json:"sub_responses"`
}

// AnswerLeaf is a reply rendered under its parent answer. Replies to a
// leaf exist in the store but are not hydrated.
type AnswerLeaf struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}
