package validation

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pboueri/supervisor/src"
)

// FolderCheckValidator passes when the target path is an existing directory.
type FolderCheckValidator struct{}

func NewFolderCheckValidator() *FolderCheckValidator {
	return &FolderCheckValidator{}
}

func (v *FolderCheckValidator) GetType() ValidationType {
	return ValidationTypeFolderCheck
}

func (v *FolderCheckValidator) Validate(ctx context.Context, target src.Target) (*ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &ValidationResult{
		ValidatedAt: time.Now(),
		Details:     []string{fmt.Sprintf("Path checked: %s", target.Path)},
	}

	info, err := os.Stat(target.Path)
	switch {
	case os.IsNotExist(err):
		result.Message = fmt.Sprintf("Folder %s does not exist", target.Path)
	case err != nil:
		return nil, fmt.Errorf("failed to stat %s: %w", target.Path, err)
	case !info.IsDir():
		result.Message = fmt.Sprintf("%s exists but is not a folder", target.Path)
	default:
		result.Passed = true
		result.Message = fmt.Sprintf("Folder %s exists", target.Path)
	}
	return result, nil
}
