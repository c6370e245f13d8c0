package constvars

const (
	URLParamAssessmentID = "assessment_id"
	URLParamSessionID    = "session_id"
	URLParamQuestionID   = "question_id"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
)

const AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
