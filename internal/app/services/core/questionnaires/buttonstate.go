package questionnaires

import (
	"strconv"
	"strings"

	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"
	"vitalab-service/internal/pkg/dto/responses"
	"vitalab-service/internal/pkg/exceptions"
)

// stateLocked assembles the navigation payload for the given question.
// Callers hold the session lock.
func (s *Session) stateLocked(question *models.Question, finished bool) *responses.SessionState {
	progress, answered, total := s.progressLocked()
	state := &responses.SessionState{
		SessionID:     s.ID,
		AssessmentID:  s.AssessmentID,
		Question:      question,
		Finished:      finished,
		Progress:      progress,
		AnsweredCount: answered,
		TotalCount:    total,
	}
	if question != nil {
		state.Button = &responses.ButtonState{
			NextEnabled:    s.validateAnswer(question) == nil,
			IsLastQuestion: s.isLastQuestion(question),
		}
	}
	return state
}

// validateAnswer checks the current question's answer against its input
// element and data type without mutating anything, so it doubles as the
// Next-button enablement rule.
func (s *Session) validateAnswer(question *models.Question) error {
	switch question.InputElement {
	case constvars.InputElementRadio, constvars.InputElementDropdown, constvars.InputElementCheckbox:
		if question.DataType == constvars.DataTypeImageGrid {
			if question.Required && !question.IsUploaded && !question.HasSelectedAnswer() {
				return exceptions.ErrAnswerRequired(nil)
			}
			return nil
		}
		if question.Required && !question.HasSelectedAnswer() {
			return exceptions.ErrAnswerRequired(nil)
		}
		return nil

	case constvars.InputElementTextBox, constvars.InputElementTextArea:
		text := ""
		if question.TextAnswer != nil {
			text = strings.TrimSpace(*question.TextAnswer)
		}
		if text == "" {
			if question.Required {
				return exceptions.ErrAnswerRequired(nil)
			}
			return nil
		}
		return validateTextByDataType(question.DataType, text)
	}

	if question.DataType == constvars.DataTypeNoAnswer {
		return s.validateAggregator(question)
	}
	return nil
}

func validateTextByDataType(dataType, text string) error {
	switch dataType {
	case constvars.DataTypeAge:
		age, err := strconv.Atoi(text)
		if err != nil {
			return exceptions.ErrAnswerOutOfRange(err)
		}
		if age < constvars.AgeAnswerMin || age > constvars.AgeAnswerMax {
			return exceptions.ErrAnswerOutOfRange(nil)
		}
	case constvars.DataTypeNumeric, constvars.DataTypeWeightHeight:
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return exceptions.ErrAnswerOutOfRange(err)
		}
	case constvars.DataTypeMeasurement:
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return exceptions.ErrAnswerOutOfRange(err)
		}
		if value < constvars.MeasurementAnswerMinInCm || value > constvars.MeasurementAnswerMaxInCm {
			return exceptions.ErrAnswerOutOfRange(nil)
		}
	}
	return nil
}

// validateAggregator requires every required question of the node's
// category to be answered before the group screen may advance.
func (s *Session) validateAggregator(node *models.Question) error {
	for _, question := range s.graph.questions {
		if question.ID == node.ID || question.Category != node.Category {
			continue
		}
		if question.Required && !question.IsAnswered {
			return exceptions.ErrAnswerRequired(nil)
		}
	}
	return nil
}

// commitAnswer finalizes the answer state on advance: free text is stored
// trimmed, and an aggregator whose members all validated is force-marked
// answered even though it carries no answer itself.
func (s *Session) commitAnswer(question *models.Question) {
	switch {
	case question.InputElement == constvars.InputElementTextBox,
		question.InputElement == constvars.InputElementTextArea:
		if question.TextAnswer != nil {
			text := strings.TrimSpace(*question.TextAnswer)
			if text == "" {
				question.TextAnswer = nil
				question.IsAnswered = false
			} else {
				question.TextAnswer = &text
				question.IsAnswered = true
			}
		}
	case question.DataType == constvars.DataTypeNoAnswer:
		question.IsAnswered = true
	default:
		question.IsAnswered = question.HasSelectedAnswer() || question.IsUploaded
	}
}

// progressLocked computes completion as 1 - (total-answered)/total. The
// answered count can transiently exceed the total while an aggregated
// category double-counts its members, so an overflow folds back below one.
func (s *Session) progressLocked() (float64, int, int) {
	total := s.graph.Len()
	answered := s.graph.AnsweredCount()
	if total == 0 {
		return 1, answered, total
	}

	if current := s.graph.FindByID(s.questionID); current != nil && s.isLastQuestion(current) {
		return 1, answered, total
	}

	progress := 1 - float64(total-answered)/float64(total)
	if progress > 1 {
		progress = 1 - (progress - 1)
	}
	if progress < 0 {
		progress = 0
	}
	return progress, answered, total
}
