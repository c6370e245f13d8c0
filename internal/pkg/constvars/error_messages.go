package constvars

// Client-facing messages. Deliberately vague for 5xx families.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientAssessmentNotFound            = "The requested assessment could not be found"
	ErrClientSessionNotFound               = "The questionnaire session could not be found or has expired"
	ErrClientQuestionNotFound              = "The requested question could not be found"
	ErrClientAnswerNotFound                = "The selected answer does not belong to the current question"
	ErrClientAnswerRequired                = "This question requires an answer before continuing"
	ErrClientAnswerOutOfRange              = "The entered value is out of the accepted range"
	ErrClientImageTooLarge                 = "The uploaded image exceeds the maximum allowed size"
	ErrClientImageWrongQuestionType        = "This question does not accept image answers"
	ErrClientSessionAlreadySubmitted       = "This questionnaire session was already submitted"
)

// Dev-facing messages; logged, never sent to production clients.
const (
	ErrDevValidationFailed               = "Request validation failed"
	ErrDevCannotParseJSON                = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON              = "Failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm       = "Failed to parse multipart form"
	ErrDevServerDeadlineExceeded         = "Operation deadline exceeded"
	ErrDevServerProcess                  = "Unhandled server processing error"
	ErrDevURLParamIDValidationFailed     = "URL parameter %s failed validation"
	ErrDevAuthTokenMissing               = "Authorization token missing from request"
	ErrDevAuthTokenInvalid               = "Authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired      = "Authorization token invalid or expired"
	ErrDevAuthGenerateToken              = "Failed to generate JWT"
	ErrDevAuthSigningMethod              = "Unexpected JWT signing method"
	ErrDevAuthInvalidSession             = "Login session not found in store"
	ErrDevInvalidAPIKey                  = "API key does not match configured admin key"
	ErrDevAPIKeyRequired                 = "API key header missing"
	ErrDevDBFailedToFindDocument         = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument       = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument       = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument       = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments     = "MongoDB failed to iterate documents"
	ErrDevRedisGetData                   = "Redis failed to get data"
	ErrDevRedisGetNoData                 = "Redis has no data for key %s"
	ErrDevRedisSetData                   = "Redis failed to set data"
	ErrDevRedisDeleteData                = "Redis failed to delete data"
	ErrDevMinioFailedToCreateObject      = "Minio failed to create object in bucket %s"
	ErrDevRabbitMQFailedToPublish        = "RabbitMQ failed to publish message to queue %s"
	ErrDevAssessmentNotFound             = "Assessment document not found"
	ErrDevAssessmentHasNoQuestions       = "Assessment document has an empty question list"
	ErrDevSessionNotFound                = "Questionnaire session not found in session store"
	ErrDevSessionNoCurrentQuestion       = "Questionnaire session has no resolvable current question"
	ErrDevQuestionNotInGraph             = "Question id not present in loaded question graph"
	ErrDevAnswerNotInQuestion            = "Answer id not present on current question"
	ErrDevAnswerValidationFailed         = "Answer failed per-type validation"
	ErrDevImageUploadWrongDataType       = "Image upload attempted on non image-grid question"
	ErrDevResumeStateDecodeFailed        = "Failed to decode resume state payload from Redis"
	ErrDevSubmittedTagsDecodeFailed      = "Failed to decode submitted tags payload"
	ErrDevSubmissionAlreadyCompleted     = "Submission already completed for this session"
	ErrDevInvalidInput                   = "Invalid input"
	ErrDevCreateHTTPRequest              = "Failed to create HTTP request"
	ErrDevSendHTTPRequest                = "Failed to send HTTP request"
)
