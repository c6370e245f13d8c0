package requests

// AnswerQuestion mutates answer state on the current question. Exactly one
// of AnswerID or TextAnswer is expected depending on the input element.
type AnswerQuestion struct {
	QuestionID string  `json:"question_id" validate:"required"`
	AnswerID   string  `json:"answer_id"`
	Selected   bool    `json:"selected"`
	TextAnswer *string `json:"text_answer"`
}

type NextQuestion struct {
	AnswerID string `json:"answer_id"`
}

type SubmitSession struct {
	Complete bool `json:"complete"`
}
