package config

import (
	"errors"

	"github.com/hyp3rd/ewrap/pkg/ewrap"
)

type validatable interface {
	Validate(eg *ewrap.ErrorGroup)
}

// Validator is a struct that holds an ErrorGroup for collecting validation errors.
type Validator struct {
	Errors *ewrap.ErrorGroup
}

// NewValidator creates a new Validator instance with an empty ErrorGroup.
func NewValidator() *Validator {
	return &Validator{
		Errors: ewrap.NewErrorGroup(),
	}
}

// Validate runs every section and returns all problems joined, not just the first.
func (v *Validator) Validate(configs ...validatable) error {
	for _, c := range configs {
		c.Validate(v.Errors)
	}

	if v.Errors.HasErrors() {
		return errors.Join(v.Errors.Errors()...)
	}

	return nil
}
