package validation

// RegisterBuiltinValidators registers all built-in validators with the registry
func RegisterBuiltinValidators(registry *ValidatorRegistry) {
	registry.RegisterValidator(ValidationTypeFileCheck, NewFileCheckValidator())
	registry.RegisterValidator(ValidationTypeFolderCheck, NewFolderCheckValidator())
}

// NewBuiltinRegistry returns a registry with the built-in validators.
func NewBuiltinRegistry() *ValidatorRegistry {
	r := NewValidatorRegistry()
	RegisterBuiltinValidators(r)
	return r
}
