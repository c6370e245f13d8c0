package questionnaires

import (
	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/exceptions"
)

// BuildSubmission assembles the persistable payload from the session's
// graph state and marks the session submitted. Both variants carry exactly
// the answered questions; an incomplete submission additionally carries the
// cursor so a later session can resume where this one stopped.
//
// Caller fills in the submission id and timestamp.
func (s *Session) BuildSubmission(complete bool) (*models.Questionnaire, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitted {
		return nil, exceptions.ErrSessionAlreadySubmitted(nil)
	}
	s.submitted = true

	submission := &models.Questionnaire{
		AssessmentID: s.AssessmentID,
		UserID:       s.UserID,
		IsCompleted:  complete,
	}
	for _, question := range s.graph.questions {
		if question.IsAnswered {
			submission.Questions = append(submission.Questions, question)
		}
	}
	if !complete {
		submission.NextQuestionID = s.questionID
	}
	return submission, nil
}

// ActiveTagNames exposes the accumulated tag set for persisting as
// submitted tags when the session completes.
func (s *Session) ActiveTagNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tags.ActiveTagNames()
}

// ProgressSummary returns the progress numbers without a question payload.
func (s *Session) ProgressSummary() (float64, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}
