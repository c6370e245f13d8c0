package responses

import "vitalab-service/internal/app/models"

// ButtonState tells the client whether the Next action is currently
// allowed and whether it should be rendered as Finish.
type ButtonState struct {
	NextEnabled    bool `json:"next_enabled"`
	IsLastQuestion bool `json:"is_last_question"`
}

// SessionState is the navigation contract payload returned by every
// session operation: the current question (option-annotated), progress and
// button state.
type SessionState struct {
	SessionID     string           `json:"session_id"`
	AssessmentID  string           `json:"assessment_id"`
	Question      *models.Question `json:"question,omitempty"`
	Finished      bool             `json:"finished"`
	Progress      float64          `json:"progress"`
	AnsweredCount int              `json:"answered_count"`
	TotalCount    int              `json:"total_count"`
	Button        *ButtonState     `json:"button,omitempty"`
}

type SubmissionResult struct {
	SubmissionID   string  `json:"submission_id"`
	AssessmentID   string  `json:"assessment_id"`
	IsCompleted    bool    `json:"is_completed"`
	AnsweredCount  int     `json:"answered_count"`
	Progress       float64 `json:"progress"`
	NextQuestionID string  `json:"next_question_id,omitempty"`
}

type UploadAnswerImage struct {
	QuestionID  string `json:"question_id"`
	ImageObject string `json:"image_object"`
}
