package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GoalInput is the user-supplied part of a goal definition.
type GoalInput struct {
	Title     string `validate:"required"`
	TotalDays int    `validate:"gt=0"`
}

// FieldError names the GoalInput field that failed validation.
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	return "invalid " + strings.ToLower(e.Field) + " (" + e.Tag + ")"
}

// NewGoalInput trims the title so whitespace-only titles are treated as empty.
func NewGoalInput(title string, totalDays int) GoalInput {
	return GoalInput{Title: strings.TrimSpace(title), TotalDays: totalDays}
}

// Validate checks the input and returns a *FieldError for the first failing field.
func (in GoalInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: verrs[0].Field(), Tag: verrs[0].Tag()}
	}
	return err
}
