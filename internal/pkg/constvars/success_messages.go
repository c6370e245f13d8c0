package constvars

const (
	CreateAssessmentSuccessMessage = "Successfully created assessment"
	FindAssessmentSuccessMessage   = "Successfully fetched assessment"
	DeleteAssessmentSuccessMessage = "Successfully deleted assessment"

	StartSessionSuccessMessage      = "Successfully started questionnaire session"
	CurrentQuestionSuccessMessage   = "Successfully fetched current question"
	AnswerQuestionSuccessMessage    = "Successfully recorded answer"
	NextQuestionSuccessMessage      = "Successfully advanced to next question"
	PreviousQuestionSuccessMessage  = "Successfully moved to previous question"
	SessionProgressSuccessMessage   = "Successfully fetched session progress"
	SubmitSessionSuccessMessage     = "Successfully submitted questionnaire"
	UploadAnswerImageSuccessMessage = "Successfully uploaded answer image"
)
