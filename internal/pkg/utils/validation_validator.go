package utils

import (
	"vitalab-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("input_element", validateInputElement)
	validate.RegisterValidation("data_type", validateDataType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateInputElement(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.InputElementRadio,
		constvars.InputElementCheckbox,
		constvars.InputElementTextBox,
		constvars.InputElementTextArea,
		constvars.InputElementDropdown:
		return true
	}
	return false
}

func validateDataType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.DataTypePlain,
		constvars.DataTypeNoAnswer,
		constvars.DataTypeImageGrid,
		constvars.DataTypeRating,
		constvars.DataTypeMeasurement,
		constvars.DataTypeNumeric,
		constvars.DataTypeAge,
		constvars.DataTypeWeightHeight:
		return true
	}
	return false
}
