package questionnaires

import (
	"strings"
	"sync"
	"time"

	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"
	"vitalab-service/internal/pkg/dto/responses"
	"vitalab-service/internal/pkg/exceptions"
)

// Session is the in-memory traversal state for one user working through one
// assessment. All exported methods take the session lock, so concurrent
// requests against the same session serialize instead of corrupting the
// cursor or the tag records.
type Session struct {
	ID           string
	UserID       string
	AssessmentID string

	mu    sync.Mutex
	graph *questionGraph
	tags  *tagEngine

	questionID        string
	defaultQuestionID string
	resumeQuestionID  string
	submitted         bool
	lastAccess        time.Time
}

func NewSession(id, userID, assessmentID string, questions []*models.Question, submittedTags []string, resumeQuestionID string) *Session {
	graph := newQuestionGraph(questions)
	graph.MarkPreviouslyAnswered()

	tags := newTagEngine(submittedTags)
	for _, question := range questions {
		for _, answer := range question.Answers {
			if answer.IsSelected {
				tags.Activate(question.ID, answer.Tag)
			}
		}
	}

	return &Session{
		ID:               id,
		UserID:           userID,
		AssessmentID:     assessmentID,
		graph:            graph,
		tags:             tags,
		resumeQuestionID: resumeQuestionID,
		lastAccess:       time.Now(),
	}
}

// Start resolves the opening question: the saved resume position when one
// exists, otherwise the entry question, either way skipping forward past
// tag-gated questions that are not reachable yet.
func (s *Session) Start() *responses.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	question := s.graph.FindByID(s.resumeQuestionID)
	if question == nil {
		question = s.graph.EntryQuestion()
	}
	question = s.skipUnreachable(question)
	if question == nil {
		return s.stateLocked(nil, true)
	}
	s.setCursor(question)
	return s.stateLocked(s.present(question), false)
}

// Current re-presents the question under the cursor without moving it.
func (s *Session) Current() *responses.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	question := s.graph.FindByID(s.questionID)
	if question == nil {
		return s.stateLocked(nil, true)
	}
	return s.stateLocked(s.present(question), false)
}

// ApplyAnswer records an option toggle or a free-text value on the given
// question and returns the refreshed state. The target may be the current
// question or one of the sub-questions of a current aggregator node.
func (s *Session) ApplyAnswer(questionID, answerID string, selected bool, textAnswer *string) (*responses.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	question := s.graph.FindByID(questionID)
	if question == nil {
		return nil, exceptions.ErrQuestionNotInGraph(nil)
	}

	if answerID != "" {
		if err := s.toggleAnswer(question, answerID, selected); err != nil {
			return nil, err
		}
	}
	if textAnswer != nil {
		s.setTextAnswer(question, textAnswer)
	}

	current := s.graph.FindByID(s.questionID)
	if current == nil {
		return s.stateLocked(nil, true), nil
	}
	return s.stateLocked(s.present(current), false), nil
}

func (s *Session) toggleAnswer(question *models.Question, answerID string, selected bool) error {
	answer := question.FindAnswerByID(answerID)
	if answer == nil {
		return exceptions.ErrAnswerNotInQuestion(nil)
	}

	if question.InputElement != constvars.InputElementCheckbox {
		// Single-select: retract the previous choice and its tags first.
		for _, other := range question.Answers {
			if other.IsSelected && other.ID != answer.ID {
				other.IsSelected = false
				s.tags.Deactivate(question.ID, other.Tag)
			}
		}
	}

	answer.IsSelected = selected
	if selected {
		s.tags.Activate(question.ID, answer.Tag)
	} else {
		s.tags.Deactivate(question.ID, answer.Tag)
	}

	question.IsSelected = question.HasSelectedAnswer()
	question.IsAnswered = question.IsSelected || question.IsUploaded
	s.tags.AnnotateOptions(question)
	return nil
}

func (s *Session) setTextAnswer(question *models.Question, textAnswer *string) {
	question.TextAnswer = textAnswer
	question.IsAnswered = strings.TrimSpace(*textAnswer) != ""
}

// ValidateAnswerImageTarget checks that the question accepts image answers
// before the caller pays for the object upload.
func (s *Session) ValidateAnswerImageTarget(questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	question := s.graph.FindByID(questionID)
	if question == nil {
		return exceptions.ErrQuestionNotInGraph(nil)
	}
	if question.DataType != constvars.DataTypeImageGrid {
		return exceptions.ErrImageWrongQuestionType(nil)
	}
	return nil
}

// AttachAnswerImage records the stored object name on an image question and
// marks it answered.
func (s *Session) AttachAnswerImage(questionID, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	question := s.graph.FindByID(questionID)
	if question == nil {
		return exceptions.ErrQuestionNotInGraph(nil)
	}
	if question.DataType != constvars.DataTypeImageGrid {
		return exceptions.ErrImageWrongQuestionType(nil)
	}
	question.ImageObject = objectName
	question.IsUploaded = true
	question.IsAnswered = true
	return nil
}

func (s *Session) setCursor(question *models.Question) {
	s.questionID = question.ID
	s.defaultQuestionID = question.DefaultNextQuestionID
}

// present prepares a question for rendering: option visibility is
// recomputed and no-answer nodes get their category children rebuilt.
func (s *Session) present(question *models.Question) *models.Question {
	s.tags.AnnotateOptions(question)
	if question.DataType == constvars.DataTypeNoAnswer {
		s.buildAggregator(question)
	}
	return question
}

// Touch refreshes the idle-expiry clock.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = time.Now()
}

func (s *Session) lastAccessedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}
