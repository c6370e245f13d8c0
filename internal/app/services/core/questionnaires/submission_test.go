package questionnaires

import (
	"testing"

	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_BuildSubmission(t *testing.T) {
	t.Run("Completed submission keeps only answered questions", func(t *testing.T) {
		session := newBranchingSession()
		session.Start()

		_, err := session.ApplyAnswer("q1", "a1", true, nil)
		require.NoError(t, err)
		_, err = session.Advance("a1")
		require.NoError(t, err)
		_, err = session.ApplyAnswer("q2", "a3", true, nil)
		require.NoError(t, err)

		submission, err := session.BuildSubmission(true)
		require.NoError(t, err)

		assert.True(t, submission.IsCompleted)
		assert.Equal(t, "assess-1", submission.AssessmentID)
		assert.Equal(t, "user-1", submission.UserID)
		assert.Empty(t, submission.NextQuestionID)

		ids := make([]string, 0, len(submission.Questions))
		for _, question := range submission.Questions {
			ids = append(ids, question.ID)
		}
		assert.ElementsMatch(t, []string{"q1", "q2"}, ids, "unanswered q3 is filtered out")
	})

	t.Run("Incomplete submission keeps answered questions plus the cursor", func(t *testing.T) {
		session := newBranchingSession()
		session.Start()

		_, err := session.ApplyAnswer("q1", "a1", true, nil)
		require.NoError(t, err)
		state, err := session.Advance("a1")
		require.NoError(t, err)
		require.Equal(t, "q2", state.Question.ID)

		submission, err := session.BuildSubmission(false)
		require.NoError(t, err)

		assert.False(t, submission.IsCompleted)
		require.Len(t, submission.Questions, 1)
		assert.Equal(t, "q1", submission.Questions[0].ID)
		assert.Equal(t, "q2", submission.NextQuestionID)
	})

	t.Run("Second submission is rejected", func(t *testing.T) {
		session := newBranchingSession()
		session.Start()

		_, err := session.BuildSubmission(false)
		require.NoError(t, err)

		_, err = session.BuildSubmission(false)
		assert.Error(t, err)
	})
}

func TestSession_ActiveTagNames(t *testing.T) {
	session := NewSession("sess-tags", "user-1", "assess-1", branchingQuestions(), []string{"overweight"}, "")
	session.Start()

	_, err := session.ApplyAnswer("q1", "a1", true, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"overweight", "smoker"}, session.ActiveTagNames())
}

func TestSession_Progress(t *testing.T) {
	t.Run("Advancing raises progress", func(t *testing.T) {
		session := newBranchingSession()
		state := session.Start()
		assert.InDelta(t, 0.0, state.Progress, 0.001)
		assert.Equal(t, 0, state.AnsweredCount)
		assert.Equal(t, 3, state.TotalCount)

		_, err := session.ApplyAnswer("q1", "a1", true, nil)
		require.NoError(t, err)
		state, err = session.Advance("a1")
		require.NoError(t, err)
		assert.InDelta(t, 1.0/3.0, state.Progress, 0.001)
		assert.Equal(t, 1, state.AnsweredCount)
	})

	t.Run("A valid last question reports full progress", func(t *testing.T) {
		session := newBranchingSession()
		session.Start()

		_, err := session.ApplyAnswer("q1", "a2", true, nil)
		require.NoError(t, err)
		state, err := session.Advance("a2")
		require.NoError(t, err)
		require.Equal(t, "q3", state.Question.ID)

		assert.InDelta(t, 1.0, state.Progress, 0.001, "optional terminal question counts as complete")
	})

	t.Run("A required unanswered last question reports full progress", func(t *testing.T) {
		questions := []*models.Question{
			{
				ID:                    "first",
				DataType:              constvars.DataTypePlain,
				InputElement:          constvars.InputElementRadio,
				IsFirstQuestion:       true,
				Required:              true,
				DefaultNextQuestionID: "last",
				Answers:               []*models.Answer{{ID: "f-a1", Value: "Ok"}},
			},
			{
				ID:           "last",
				DataType:     constvars.DataTypePlain,
				InputElement: constvars.InputElementRadio,
				Required:     true,
				Answers:      []*models.Answer{{ID: "l-a1", Value: "Done"}},
			},
		}
		session := NewSession("sess-last", "user-1", "assess-1", questions, nil, "")
		session.Start()

		_, err := session.ApplyAnswer("first", "f-a1", true, nil)
		require.NoError(t, err)
		state, err := session.Advance("f-a1")
		require.NoError(t, err)
		require.Equal(t, "last", state.Question.ID)

		assert.InDelta(t, 1.0, state.Progress, 0.001, "reaching the end counts as complete before the answer")
		assert.False(t, state.Button.NextEnabled)
	})

	t.Run("Back keeps earlier answers in the count", func(t *testing.T) {
		session := newBranchingSession()
		session.Start()

		_, err := session.ApplyAnswer("q1", "a1", true, nil)
		require.NoError(t, err)
		_, err = session.Advance("a1")
		require.NoError(t, err)

		state, err := session.Back()
		require.NoError(t, err)
		assert.InDelta(t, 1.0/3.0, state.Progress, 0.001)

		progress, answered, total := session.ProgressSummary()
		assert.InDelta(t, state.Progress, progress, 0.001)
		assert.Equal(t, 1, answered)
		assert.Equal(t, 3, total)
	})
}

func TestSession_MarkPreviouslyAnswered(t *testing.T) {
	questions := branchingQuestions()
	questions[0].Answers[0].IsSelected = true

	session := NewSession("sess-resume", "user-1", "assess-1", questions, nil, "q2")
	state := session.Start()

	require.NotNil(t, state.Question)
	assert.Equal(t, "q2", state.Question.ID, "the selected smoker answer re-activates its tag on load")
	assert.Equal(t, 1, state.AnsweredCount)

	loaded := session.graph.FindByID("q1")
	require.NotNil(t, loaded)
	assert.True(t, loaded.IsAnswered)
	assert.True(t, loaded.IsSelected)
	assert.True(t, loaded.IsUploaded)

	t.Run("Text answers raise the same flags", func(t *testing.T) {
		questions := branchingQuestions()
		text := "resumed note"
		questions[2].TextAnswer = &text

		session := NewSession("sess-resume-text", "user-1", "assess-1", questions, nil, "")
		session.Start()

		loaded := session.graph.FindByID("q3")
		require.NotNil(t, loaded)
		assert.True(t, loaded.IsAnswered)
		assert.True(t, loaded.IsSelected)
		assert.True(t, loaded.IsUploaded)
	})
}
