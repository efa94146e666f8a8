package request

// OpenSessionRequest is the request body for opening a play session
type OpenSessionRequest struct {
	Username string `json:"username"`
}

// SubmitAnswerRequest is the request body for answering a question
type SubmitAnswerRequest struct {
	Category   string `json:"category"`
	QuestionID string `json:"question_id"`
	Choice     string `json:"choice"`
}
