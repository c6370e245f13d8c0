package questionnaires

import (
	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"
	"vitalab-service/internal/pkg/dto/responses"
	"vitalab-service/internal/pkg/exceptions"
)

// Advance validates the current question, commits its answer and moves the
// cursor to the next reachable question. A nil question with finished=true
// in the returned state means the traversal walked off the end of the graph.
func (s *Session) Advance(answerID string) (*responses.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.graph.FindByID(s.questionID)
	if current == nil {
		return s.stateLocked(nil, true), nil
	}

	if err := s.validateAnswer(current); err != nil {
		current.ShowError = true
		return nil, err
	}
	current.ShowError = false
	s.commitAnswer(current)
	current.IsSelected = true

	next := s.resolveTarget(current, answerID)
	if next == nil {
		return s.stateLocked(nil, true), nil
	}

	// Lazily stamp the back-pointer hint. Only the first writer wins, so
	// revisits through a different branch do not rewrite history.
	if next.ID != current.ID && next.PreviousQuestionID == "" {
		next.PreviousQuestionID = current.ID
	}

	s.setCursor(next)
	return s.stateLocked(s.present(next), false), nil
}

// resolveTarget picks the raw successor, then skips forward past questions
// whose tag gate is not satisfied.
func (s *Session) resolveTarget(current *models.Question, answerID string) *models.Question {
	// A sub-node inside an aggregated category escapes through its primary
	// question's default pointer, never through its own.
	if current.PrimaryQuestionID != "" {
		primary := s.graph.FindByID(current.PrimaryQuestionID)
		if primary == nil || primary.DefaultNextQuestionID == "" {
			return nil
		}
		return s.skipUnreachable(s.graph.FindByID(primary.DefaultNextQuestionID))
	}

	targetID := current.DefaultNextQuestionID
	if answerID != "" {
		if answer := current.FindAnswerByID(answerID); answer != nil && answer.NextQuestionID != "" {
			targetID = answer.NextQuestionID
		}
	}
	if targetID == "" {
		return nil
	}
	return s.skipUnreachable(s.graph.FindByID(targetID))
}

// skipUnreachable follows default pointers past tag-gated questions. The
// hop budget bounds malformed graphs with default-pointer cycles.
func (s *Session) skipUnreachable(question *models.Question) *models.Question {
	for hops := 0; question != nil && hops <= s.graph.Len(); hops++ {
		if s.tags.IsQuestionReachable(question) {
			return question
		}
		question = s.graph.FindByID(question.DefaultNextQuestionID)
	}
	return nil
}

// Back moves the cursor to the predecessor of the current question,
// clearing the current question's answered flag so progress does not count
// it twice on the way forward again. At the first question Back is a no-op.
func (s *Session) Back() (*responses.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.graph.FindByID(s.questionID)
	if current == nil {
		return nil, exceptions.ErrSessionNoCurrentQuestion(nil)
	}
	if current.IsFirstQuestion {
		return s.stateLocked(s.present(current), false), nil
	}

	current.IsAnswered = false
	current.ShowError = false

	previous := s.findPredecessor(current.ID)
	for hops := 0; previous != nil && !s.tags.IsQuestionReachable(previous) && hops <= s.graph.Len(); hops++ {
		previous = s.findPredecessor(previous.ID)
	}
	if previous == nil {
		return s.stateLocked(s.present(current), false), nil
	}

	// Landing on a member of an aggregated category redirects to the
	// category's no-answer front node so the whole group is shown again.
	if aggregator := s.graph.AggregatorForCategory(previous.Category); aggregator != nil &&
		aggregator.ID != previous.ID && aggregator.ID != current.ID {
		previous = aggregator
	}

	s.setCursor(previous)
	return s.stateLocked(s.present(previous), false), nil
}

// findPredecessor scans the graph for the question that leads to id, in
// priority order: a selected branching answer first, then a selected
// non-branching answer on a question whose default points here, then any
// default pointer. Checkbox questions never branch, so they are excluded
// from the first pass.
func (s *Session) findPredecessor(id string) *models.Question {
	for _, question := range s.graph.questions {
		if question.ID == id || question.InputElement == constvars.InputElementCheckbox {
			continue
		}
		for _, answer := range question.Answers {
			if answer.IsSelected && answer.NextQuestionID == id {
				return question
			}
		}
	}

	for _, question := range s.graph.questions {
		if question.ID == id || question.DefaultNextQuestionID != id {
			continue
		}
		for _, answer := range question.Answers {
			if answer.IsSelected && answer.NextQuestionID == "" {
				return question
			}
		}
	}

	for _, question := range s.graph.questions {
		if question.ID != id && question.DefaultNextQuestionID == id {
			return question
		}
	}
	return nil
}

// buildAggregator rebuilds the sub-question tree under a no-answer node on
// every visit: children are the other questions of the same category, each
// carrying shallow copies of its same-sub-type siblings as grandchildren.
// Copies keep the rendered tree acyclic; answer mutations still go through
// the real graph nodes by id.
func (s *Session) buildAggregator(node *models.Question) {
	node.SubQuestions = nil
	for _, child := range s.graph.questions {
		if child.ID == node.ID || child.Category != node.Category {
			continue
		}

		child.SubQuestions = nil
		if child.SubType != "" {
			for _, other := range s.graph.questions {
				if other.ID == child.ID || other.ID == node.ID || other.SubType != child.SubType {
					continue
				}
				grandchild := *other
				grandchild.SubQuestions = nil
				s.tags.AnnotateOptions(&grandchild)
				child.SubQuestions = append(child.SubQuestions, &grandchild)
			}
		}

		s.tags.AnnotateOptions(child)
		node.SubQuestions = append(node.SubQuestions, child)
	}
}

// isLastQuestion reports whether no forward pointer leaves the question:
// the default pointer is empty and every answer branch is empty.
func (s *Session) isLastQuestion(question *models.Question) bool {
	if question.DefaultNextQuestionID != "" {
		return false
	}
	for _, answer := range question.Answers {
		if answer.NextQuestionID != "" {
			return false
		}
	}
	return true
}
