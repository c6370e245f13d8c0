package models

// TagRecord binds a question id to the tag names currently active because
// of answers chosen at that question. At most one record exists per real
// question id; the pseudo id constvars.SubmittedTagsQuestionID carries tags
// from previously completed sessions.
type TagRecord struct {
	QuestionID string   `json:"question_id"`
	Tags       []string `json:"tags"`
}
