package constvars

type contextKey string

const (
	ContextSessionDataKey contextKey = "session_data"
	ContextUserIDKey      contextKey = "user_id"
	ContextAPIKeyAuthKey  contextKey = "api_key_auth"
)

const (
	AppTimestampFormat = "2006-01-02T15:04:05Z07:00"

	ResponseUnknown = "unknown"
)

// Redis key formats. Resume state is one JSON document per user holding the
// list of {assessment_id, next_question_id} records.
const (
	RedisKeyLoginSessionFormat  = "login_session:%s"
	RedisKeyResumeStateFormat   = "resume_state:%s"
	RedisKeySubmittedTagsFormat = "submitted_tags:%s:%s"
)

const (
	SubmittedTagsCacheExpiryInMinutes = 30
)

const (
	RabbitMQSubmissionQueueDefault = "vitalab.submissions.completed"
)
