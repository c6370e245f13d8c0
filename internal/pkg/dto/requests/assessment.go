package requests

type CreateAssessmentAnswer struct {
	ID             string   `json:"id" validate:"required"`
	Value          string   `json:"value" validate:"required"`
	Description    string   `json:"description"`
	Sequence       int      `json:"sequence" validate:"min=0"`
	NextQuestionID string   `json:"next_question_id"`
	Tag            []string `json:"tag"`
	TagRender      []string `json:"tag_render"`
}

type CreateAssessmentQuestion struct {
	ID                    string                   `json:"id" validate:"required"`
	Text                  string                   `json:"text" validate:"required"`
	Category              string                   `json:"category"`
	SubType               string                   `json:"sub_type"`
	DataType              string                   `json:"data_type" validate:"required,data_type"`
	InputElement          string                   `json:"input_element" validate:"omitempty,input_element"`
	Tag                   []string                 `json:"tag"`
	DefaultNextQuestionID string                   `json:"default_next_question_id"`
	PrimaryQuestionID     string                   `json:"primary_question_id"`
	IsFirstQuestion       bool                     `json:"is_first_question"`
	Required              bool                     `json:"required"`
	Answers               []CreateAssessmentAnswer `json:"answers" validate:"dive"`
}

type CreateAssessment struct {
	Title     string                     `json:"title" validate:"required"`
	Questions []CreateAssessmentQuestion `json:"questions" validate:"required,min=1,dive"`
}
