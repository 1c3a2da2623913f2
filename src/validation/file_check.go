package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/pboueri/supervisor/src"
	"github.com/pboueri/supervisor/src/util"
)

// FileCheckValidator passes when the target path exists. Whatever is at the
// path is accepted as is.
type FileCheckValidator struct{}

func NewFileCheckValidator() *FileCheckValidator {
	return &FileCheckValidator{}
}

func (v *FileCheckValidator) GetType() ValidationType {
	return ValidationTypeFileCheck
}

func (v *FileCheckValidator) Validate(ctx context.Context, target src.Target) (*ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if target.Path == "" {
		return nil, fmt.Errorf("target %s has no path", target.Kind)
	}

	exists, err := util.Exists(target.Path)
	if err != nil {
		return nil, err
	}

	name := target.Kind.FileName()
	result := &ValidationResult{
		Passed:      exists,
		ValidatedAt: time.Now(),
		Details:     []string{fmt.Sprintf("Path checked: %s", target.Path)},
	}
	if exists {
		result.Message = fmt.Sprintf("File %s exists", name)
	} else {
		result.Message = fmt.Sprintf("File %s not found", name)
	}
	return result, nil
}
