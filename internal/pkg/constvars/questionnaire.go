package constvars

// Question data types. DataTypeNoAnswer marks a category grouping node that
// carries no answers of its own and renders its whole category as one
// multi-part screen.
const (
	DataTypePlain        = "plain"
	DataTypeNoAnswer     = "no_answer"
	DataTypeImageGrid    = "image_grid"
	DataTypeRating       = "rating"
	DataTypeMeasurement  = "waist_hip_neck"
	DataTypeNumeric      = "numeric"
	DataTypeAge          = "age"
	DataTypeWeightHeight = "weight_height"
)

const (
	InputElementRadio    = "radio"
	InputElementCheckbox = "checkbox"
	InputElementTextBox  = "text_box"
	InputElementTextArea = "text_area"
	InputElementDropdown = "dropdown"
)

// SubmittedTagsQuestionID is the pseudo question id binding tags earned in
// previously completed sessions into the tag accumulator.
const SubmittedTagsQuestionID = "submitted"

const (
	AgeAnswerMin = 0
	AgeAnswerMax = 120

	MeasurementAnswerMinInCm = 20
	MeasurementAnswerMaxInCm = 300
)
