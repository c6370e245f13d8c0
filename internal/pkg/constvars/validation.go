package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s",
	"max":           "must be at most %s",
	"oneof":         "must be one of: %s",
	"uuid":          "must be a valid UUID",
	"input_element": "must be a known input element",
	"data_type":     "must be a known question data type",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
