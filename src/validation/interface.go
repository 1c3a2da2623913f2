package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/pboueri/supervisor/src"
)

type ValidationType string

const (
	ValidationTypeFileCheck   ValidationType = "FileCheck"
	ValidationTypeFolderCheck ValidationType = "FolderCheck"
)

// Validator checks one path. Only existence is inspected, never content.
type Validator interface {
	Validate(ctx context.Context, target src.Target) (*ValidationResult, error)
	GetType() ValidationType
}

type ValidationResult struct {
	Passed      bool
	Message     string
	Details     []string
	ValidatedAt time.Time
}

type ValidatorRegistry struct {
	validators map[ValidationType]Validator
}

func NewValidatorRegistry() *ValidatorRegistry {
	return &ValidatorRegistry{
		validators: make(map[ValidationType]Validator),
	}
}

func (r *ValidatorRegistry) RegisterValidator(validationType ValidationType, validator Validator) {
	r.validators[validationType] = validator
}

func (r *ValidatorRegistry) GetValidator(validationType ValidationType) (Validator, error) {
	validator, exists := r.validators[validationType]
	if !exists {
		return nil, fmt.Errorf("unknown validation type: %s", validationType)
	}
	return validator, nil
}

func (r *ValidatorRegistry) RunValidation(ctx context.Context, validationType ValidationType, target src.Target) (*ValidationResult, error) {
	validator, err := r.GetValidator(validationType)
	if err != nil {
		return nil, err
	}
	return validator.Validate(ctx, target)
}
