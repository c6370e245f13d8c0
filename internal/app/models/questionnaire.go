package models

import "time"

// Assessment is the stored question source for one questionnaire.
type Assessment struct {
	ID        string      `json:"id" bson:"_id"`
	Title     string      `json:"title" bson:"title"`
	Questions []*Question `json:"questions" bson:"questions"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// Questionnaire is the submission payload built from session graph state.
// Incomplete submissions carry NextQuestionID so a later session can resume.
type Questionnaire struct {
	ID             string      `json:"id" bson:"_id"`
	AssessmentID   string      `json:"assessment_id" bson:"assessment_id"`
	UserID         string      `json:"user_id" bson:"user_id"`
	IsCompleted    bool        `json:"is_completed" bson:"is_completed"`
	Questions      []*Question `json:"questions" bson:"questions"`
	NextQuestionID string      `json:"next_question_id,omitempty" bson:"next_question_id,omitempty"`
	SubmittedAt    time.Time   `json:"submitted_at" bson:"submitted_at"`
}

// SubmittedTags stores the tag names a user earned across completed
// sessions of one assessment.
type SubmittedTags struct {
	UserID       string    `json:"user_id" bson:"user_id"`
	AssessmentID string    `json:"assessment_id" bson:"assessment_id"`
	Tags         []string  `json:"tags" bson:"tags"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ResumeState is one record of the per-user resume list held in Redis.
type ResumeState struct {
	AssessmentID   string `json:"assessment_id"`
	NextQuestionID string `json:"next_question_id"`
}
