package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxSkillPoints is the most a new commander may distribute
const MaxSkillPoints = 20

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with custom validation rules
func NewValidator() *Validator {
	v := validator.New()

	// Starting skills may not exceed the points a new commander gets
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		skills := sl.Current().Interface().(SkillsConfig)
		if skills.Total() > MaxSkillPoints {
			sl.ReportError(skills.Total(), "Skills", "Skills", "max_points", fmt.Sprint(MaxSkillPoints))
		}
	}, SkillsConfig{})

	return &Validator{
		validate: v,
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
