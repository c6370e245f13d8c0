package questionnaires

import (
	"strings"

	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"
)

// questionGraph holds the working copy of an assessment's questions for one
// session. Lookups are by id; traversal order is defined by the pointer
// fields on the questions, not by slice position.
type questionGraph struct {
	questions []*models.Question
	byID      map[string]*models.Question
}

func newQuestionGraph(questions []*models.Question) *questionGraph {
	graph := &questionGraph{
		questions: questions,
		byID:      make(map[string]*models.Question, len(questions)),
	}
	for _, question := range questions {
		graph.byID[question.ID] = question
	}
	return graph
}

func (g *questionGraph) FindByID(id string) *models.Question {
	if id == "" {
		return nil
	}
	return g.byID[id]
}

func (g *questionGraph) Len() int {
	return len(g.questions)
}

// EntryQuestion returns the flagged first question, falling back to the
// first element when no question carries the flag.
func (g *questionGraph) EntryQuestion() *models.Question {
	for _, question := range g.questions {
		if question.IsFirstQuestion {
			return question
		}
	}
	if len(g.questions) > 0 {
		return g.questions[0]
	}
	return nil
}

// AggregatorForCategory finds the no-answer node that fronts the given
// category, if the assessment defines one.
func (g *questionGraph) AggregatorForCategory(category string) *models.Question {
	if category == "" {
		return nil
	}
	for _, question := range g.questions {
		if question.DataType == constvars.DataTypeNoAnswer && question.Category == category {
			return question
		}
	}
	return nil
}

// MarkPreviouslyAnswered reconstructs the state flags for questions that
// arrive with answer state from an earlier partial submission. All three
// flags go up together so the question renders as already complete and
// survives an early exit.
func (g *questionGraph) MarkPreviouslyAnswered() {
	for _, question := range g.questions {
		answered := question.HasSelectedAnswer() ||
			(question.TextAnswer != nil && strings.TrimSpace(*question.TextAnswer) != "") ||
			question.ImageObject != ""
		if answered {
			question.IsAnswered = true
			question.IsSelected = true
			question.IsUploaded = true
		}
	}
}

func (g *questionGraph) AnsweredCount() int {
	count := 0
	for _, question := range g.questions {
		if question.IsAnswered {
			count++
		}
	}
	return count
}
