package models

// Question is a node of the assessment question graph. Traversal and answer
// state live directly on the node; there is no separate answer log. Fields
// tagged bson:"-" are session state and never persisted with the assessment.
type Question struct {
	ID           string `json:"id" bson:"id"`
	Text         string `json:"text" bson:"text"`
	Category     string `json:"category" bson:"category"`
	SubType      string `json:"sub_type" bson:"sub_type"`
	DataType     string `json:"data_type" bson:"data_type"`
	InputElement string `json:"input_element" bson:"input_element"`

	// Tag gates the whole question: empty means always shown, otherwise at
	// least one of these names must be active.
	Tag []string `json:"tag" bson:"tag"`

	DefaultNextQuestionID string `json:"default_next_question_id" bson:"default_next_question_id"`
	PrimaryQuestionID     string `json:"primary_question_id" bson:"primary_question_id"`
	// PreviousQuestionID is stamped lazily on first forward visit. It is a
	// hint only; backward navigation re-derives the predecessor by scanning.
	PreviousQuestionID string `json:"previous_question_id" bson:"-"`

	IsFirstQuestion bool `json:"is_first_question" bson:"is_first_question"`
	Required        bool `json:"required" bson:"required"`

	IsAnswered bool `json:"is_answered" bson:"is_answered"`
	IsSelected bool `json:"is_selected" bson:"is_selected"`
	IsUploaded bool `json:"is_uploaded" bson:"is_uploaded"`
	ShowError  bool `json:"show_error" bson:"-"`

	SubQuestions []*Question `json:"sub_questions,omitempty" bson:"-"`
	Answers      []*Answer   `json:"answers" bson:"answers"`

	TextAnswer  *string `json:"text_answer,omitempty" bson:"text_answer,omitempty"`
	ImageObject string  `json:"image_object,omitempty" bson:"image_object,omitempty"`
}

// Answer is one selectable option of a question.
type Answer struct {
	ID          string `json:"id" bson:"id"`
	Value       string `json:"value" bson:"value"`
	Description string `json:"description" bson:"description"`
	Sequence    int    `json:"sequence" bson:"sequence"`

	IsSelected bool `json:"is_selected" bson:"is_selected"`

	// NextQuestionID overrides the question's default successor when this
	// answer is chosen.
	NextQuestionID string `json:"next_question_id" bson:"next_question_id"`

	// Tag names activated when this answer is selected.
	Tag []string `json:"tag" bson:"tag"`
	// TagRender gates visibility of this option only; the option is flagged
	// hidden, never removed, so deselection elsewhere can restore it.
	TagRender  []string `json:"tag_render" bson:"tag_render"`
	ShowOption bool     `json:"show_option" bson:"-"`
}

func (q *Question) FindAnswerByID(id string) *Answer {
	for _, a := range q.Answers {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (q *Question) HasSelectedAnswer() bool {
	for _, a := range q.Answers {
		if a.IsSelected {
			return true
		}
	}
	return false
}
