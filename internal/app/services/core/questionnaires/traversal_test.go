package questionnaires

import (
	"testing"

	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// branchingQuestions builds the canonical three-question graph: q1 branches
// to the smoker-gated q2 via its first answer, otherwise the default pointer
// skips straight to the terminal q3.
func branchingQuestions() []*models.Question {
	return []*models.Question{
		{
			ID:                    "q1",
			Text:                  "Do you smoke?",
			DataType:              constvars.DataTypePlain,
			InputElement:          constvars.InputElementRadio,
			IsFirstQuestion:       true,
			Required:              true,
			DefaultNextQuestionID: "q3",
			Answers: []*models.Answer{
				{ID: "a1", Value: "Yes", Tag: []string{"smoker"}, NextQuestionID: "q2"},
				{ID: "a2", Value: "No"},
			},
		},
		{
			ID:                    "q2",
			Text:                  "How many cigarettes per day?",
			DataType:              constvars.DataTypePlain,
			InputElement:          constvars.InputElementRadio,
			Tag:                   []string{"smoker"},
			DefaultNextQuestionID: "q3",
			Answers: []*models.Answer{
				{ID: "a3", Value: "Fewer than 10"},
				{ID: "a4", Value: "10 or more"},
			},
		},
		{
			ID:           "q3",
			Text:         "Anything else to add?",
			DataType:     constvars.DataTypePlain,
			InputElement: constvars.InputElementTextArea,
		},
	}
}

func newBranchingSession() *Session {
	return NewSession("sess-1", "user-1", "assess-1", branchingQuestions(), nil, "")
}

func TestSession_Start(t *testing.T) {
	t.Run("Resolves the flagged first question", func(t *testing.T) {
		session := newBranchingSession()
		state := session.Start()

		require.NotNil(t, state.Question)
		assert.Equal(t, "q1", state.Question.ID)
		assert.False(t, state.Finished)
		assert.Equal(t, 3, state.TotalCount)
	})

	t.Run("Is idempotent", func(t *testing.T) {
		session := newBranchingSession()
		first := session.Start()
		second := session.Start()

		assert.Equal(t, first.Question.ID, second.Question.ID)
		assert.Equal(t, first.Progress, second.Progress)
	})

	t.Run("Skips an unreachable opening chain", func(t *testing.T) {
		questions := []*models.Question{
			{ID: "gate-1", IsFirstQuestion: true, Tag: []string{"never"}, DefaultNextQuestionID: "gate-2"},
			{ID: "gate-2", Tag: []string{"never"}, DefaultNextQuestionID: "open"},
			{ID: "open", InputElement: constvars.InputElementRadio},
		}
		session := NewSession("sess-2", "user-1", "assess-1", questions, nil, "")
		state := session.Start()

		require.NotNil(t, state.Question)
		assert.Equal(t, "open", state.Question.ID)
	})

	t.Run("Resumes at the saved question", func(t *testing.T) {
		session := NewSession("sess-3", "user-1", "assess-1", branchingQuestions(), []string{"smoker"}, "q2")
		state := session.Start()

		require.NotNil(t, state.Question)
		assert.Equal(t, "q2", state.Question.ID)
	})

	t.Run("Skips past a gated resume target", func(t *testing.T) {
		// Resume points at q2 but no smoker tag is active, so the skip
		// walks q2's default pointer to q3.
		session := NewSession("sess-4", "user-1", "assess-1", branchingQuestions(), nil, "q2")
		state := session.Start()

		require.NotNil(t, state.Question)
		assert.Equal(t, "q3", state.Question.ID)
	})

	t.Run("Finishes immediately when nothing is reachable", func(t *testing.T) {
		questions := []*models.Question{
			{ID: "only", IsFirstQuestion: true, Tag: []string{"never"}},
		}
		session := NewSession("sess-5", "user-1", "assess-1", questions, nil, "")
		state := session.Start()

		assert.Nil(t, state.Question)
		assert.True(t, state.Finished)
	})
}

func TestSession_AdvanceBranching(t *testing.T) {
	t.Run("Branching answer reaches the gated question", func(t *testing.T) {
		session := newBranchingSession()
		session.Start()

		_, err := session.ApplyAnswer("q1", "a1", true, nil)
		require.NoError(t, err)

		state, err := session.Advance("a1")
		require.NoError(t, err)
		require.NotNil(t, state.Question)
		assert.Equal(t, "q2", state.Question.ID)
		assert.Equal(t, "q1", state.Question.PreviousQuestionID)
	})

	t.Run("Non-branching answer skips the gated question", func(t *testing.T) {
		session := newBranchingSession()
		session.Start()

		_, err := session.ApplyAnswer("q1", "a2", true, nil)
		require.NoError(t, err)

		state, err := session.Advance("a2")
		require.NoError(t, err)
		require.NotNil(t, state.Question)
		assert.Equal(t, "q3", state.Question.ID, "q2 is gated on smoker and must be skipped")
	})

	t.Run("Advance past the terminal question finishes", func(t *testing.T) {
		session := newBranchingSession()
		session.Start()

		_, err := session.ApplyAnswer("q1", "a2", true, nil)
		require.NoError(t, err)
		_, err = session.Advance("a2")
		require.NoError(t, err)

		state, err := session.Advance("")
		require.NoError(t, err)
		assert.Nil(t, state.Question)
		assert.True(t, state.Finished)
	})
}

func TestSession_ReachabilityFollowsSelection(t *testing.T) {
	session := newBranchingSession()
	session.Start()

	_, err := session.ApplyAnswer("q1", "a1", true, nil)
	require.NoError(t, err)
	assert.True(t, session.tags.IsQuestionReachable(session.graph.FindByID("q2")))

	// Switching to the other radio option retracts the smoker tag.
	_, err = session.ApplyAnswer("q1", "a2", true, nil)
	require.NoError(t, err)
	assert.False(t, session.tags.IsQuestionReachable(session.graph.FindByID("q2")))

	// Selecting again restores it; no residue is left behind.
	_, err = session.ApplyAnswer("q1", "a1", true, nil)
	require.NoError(t, err)
	assert.True(t, session.tags.IsQuestionReachable(session.graph.FindByID("q2")))
}

func TestSession_ForwardBackwardRoundTrip(t *testing.T) {
	session := newBranchingSession()
	session.Start()

	_, err := session.ApplyAnswer("q1", "a1", true, nil)
	require.NoError(t, err)
	state, err := session.Advance("a1")
	require.NoError(t, err)
	require.Equal(t, "q2", state.Question.ID)

	state, err = session.Back()
	require.NoError(t, err)
	require.NotNil(t, state.Question)
	assert.Equal(t, "q1", state.Question.ID)

	q2 := session.graph.FindByID("q2")
	assert.False(t, q2.IsAnswered, "leaving a question backward clears its answered flag")

	t.Run("Back at the first question is a no-op", func(t *testing.T) {
		state, err := session.Back()
		require.NoError(t, err)
		require.NotNil(t, state.Question)
		assert.Equal(t, "q1", state.Question.ID)
	})
}

func TestSession_BackSkipsUnreachablePredecessor(t *testing.T) {
	questions := []*models.Question{
		{ID: "first", IsFirstQuestion: true, InputElement: constvars.InputElementRadio, DefaultNextQuestionID: "gated"},
		{ID: "gated", Tag: []string{"never"}, DefaultNextQuestionID: "last"},
		{ID: "last", InputElement: constvars.InputElementRadio},
	}
	session := NewSession("sess-back", "user-1", "assess-1", questions, nil, "")
	session.Start()

	// Forward traversal hops the gated question; backward must do the same.
	state, err := session.Advance("")
	require.NoError(t, err)
	require.Equal(t, "last", state.Question.ID)

	state, err = session.Back()
	require.NoError(t, err)
	require.NotNil(t, state.Question)
	assert.Equal(t, "first", state.Question.ID, "backward scan must hop over the gated predecessor")
}

func aggregatedQuestions() []*models.Question {
	return []*models.Question{
		{
			ID:                    "front",
			DataType:              constvars.DataTypeNoAnswer,
			Category:              "body",
			IsFirstQuestion:       true,
			DefaultNextQuestionID: "after",
		},
		{
			ID:           "waist",
			DataType:     constvars.DataTypeMeasurement,
			InputElement: constvars.InputElementTextBox,
			Category:     "body",
			SubType:      "circumference",
			Required:     true,
		},
		{
			ID:           "hip",
			DataType:     constvars.DataTypeMeasurement,
			InputElement: constvars.InputElementTextBox,
			Category:     "body",
			SubType:      "circumference",
			Required:     true,
		},
		{
			ID:           "posture",
			DataType:     constvars.DataTypePlain,
			InputElement: constvars.InputElementRadio,
			Category:     "body",
			Answers: []*models.Answer{
				{ID: "upright", Value: "Upright"},
			},
		},
		{
			ID:           "after",
			DataType:     constvars.DataTypePlain,
			InputElement: constvars.InputElementRadio,
		},
	}
}

func TestSession_Aggregator(t *testing.T) {
	session := NewSession("sess-agg", "user-1", "assess-2", aggregatedQuestions(), nil, "")
	state := session.Start()
	require.NotNil(t, state.Question)
	require.Equal(t, "front", state.Question.ID)

	t.Run("Children are the other questions of the category", func(t *testing.T) {
		childIDs := make([]string, 0, len(state.Question.SubQuestions))
		for _, child := range state.Question.SubQuestions {
			childIDs = append(childIDs, child.ID)
		}
		assert.ElementsMatch(t, []string{"waist", "hip", "posture"}, childIDs)
	})

	t.Run("Grandchildren share the child's sub type", func(t *testing.T) {
		for _, child := range state.Question.SubQuestions {
			switch child.ID {
			case "waist":
				require.Len(t, child.SubQuestions, 1)
				assert.Equal(t, "hip", child.SubQuestions[0].ID)
				assert.Empty(t, child.SubQuestions[0].SubQuestions, "grandchildren do not nest further")
			case "hip":
				require.Len(t, child.SubQuestions, 1)
				assert.Equal(t, "waist", child.SubQuestions[0].ID)
			case "posture":
				assert.Empty(t, child.SubQuestions)
			}
		}
	})

	t.Run("Tree is rebuilt on every visit", func(t *testing.T) {
		_, err := session.ApplyAnswer("waist", "", true, stringPtr("82"))
		require.NoError(t, err)
		_, err = session.ApplyAnswer("hip", "", true, stringPtr("95"))
		require.NoError(t, err)

		refreshed := session.Current()
		require.Equal(t, "front", refreshed.Question.ID)
		assert.Len(t, refreshed.Question.SubQuestions, 3)
	})

	t.Run("Advance requires every required member", func(t *testing.T) {
		// waist and hip are answered above; posture is optional.
		state, err := session.Advance("")
		require.NoError(t, err)
		require.NotNil(t, state.Question)
		assert.Equal(t, "after", state.Question.ID)

		front := session.graph.FindByID("front")
		assert.True(t, front.IsAnswered, "aggregator is force-marked answered on advance")
	})

	t.Run("Back returns to the front node", func(t *testing.T) {
		state, err := session.Back()
		require.NoError(t, err)
		require.NotNil(t, state.Question)
		assert.Equal(t, "front", state.Question.ID)
	})
}

func TestSession_PrimaryQuestionEscape(t *testing.T) {
	questions := []*models.Question{
		{
			ID:                    "front",
			DataType:              constvars.DataTypeNoAnswer,
			Category:              "body",
			IsFirstQuestion:       true,
			DefaultNextQuestionID: "after",
		},
		{
			ID:                    "member",
			DataType:              constvars.DataTypePlain,
			InputElement:          constvars.InputElementRadio,
			Category:              "body",
			PrimaryQuestionID:     "front",
			DefaultNextQuestionID: "front", // own pointer must be ignored
			Answers: []*models.Answer{
				{ID: "yes", Value: "Yes"},
			},
		},
		{
			ID:           "after",
			DataType:     constvars.DataTypePlain,
			InputElement: constvars.InputElementRadio,
		},
	}
	session := NewSession("sess-esc", "user-1", "assess-3", questions, nil, "member")
	state := session.Start()
	require.Equal(t, "member", state.Question.ID)

	state, err := session.Advance("")
	require.NoError(t, err)
	require.NotNil(t, state.Question)
	assert.Equal(t, "after", state.Question.ID, "sub-node escapes through its primary question's default pointer")
}

func TestSession_DefaultPointerCycleIsBounded(t *testing.T) {
	questions := []*models.Question{
		{ID: "start", IsFirstQuestion: true, InputElement: constvars.InputElementRadio, DefaultNextQuestionID: "loop-a"},
		{ID: "loop-a", Tag: []string{"never"}, DefaultNextQuestionID: "loop-b"},
		{ID: "loop-b", Tag: []string{"never"}, DefaultNextQuestionID: "loop-a"},
	}
	session := NewSession("sess-loop", "user-1", "assess-4", questions, nil, "")
	session.Start()

	state, err := session.Advance("")
	require.NoError(t, err)
	assert.Nil(t, state.Question)
	assert.True(t, state.Finished, "a gated default-pointer cycle terminates the traversal")
}

func stringPtr(s string) *string {
	return &s
}
