package datatask

// -----------------------------------------------------------------------------
// Validator interface
// -----------------------------------------------------------------------------

type Validator interface {
	Validate() error
}

// -----------------------------------------------------------------------------
// CompositeValidator
// -----------------------------------------------------------------------------

// CompositeValidator runs validators in order and stops at the first failure.
// The order determines which error surfaces when several fields are invalid.
type CompositeValidator struct {
	validators []Validator
}

func NewCompositeValidator(validators ...Validator) *CompositeValidator {
	return &CompositeValidator{
		validators: validators,
	}
}

func (v *CompositeValidator) AddValidator(validator Validator) {
	v.validators = append(v.validators, validator)
}

func (v *CompositeValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// ResourcesValidator - Validates the optional resources attribute
// -----------------------------------------------------------------------------

type ResourcesValidator struct {
	candidate map[string]any
}

func NewResourcesValidator(candidate map[string]any) *ResourcesValidator {
	return &ResourcesValidator{candidate: candidate}
}

func (v *ResourcesValidator) Validate() error {
	raw, present := v.candidate["resources"]
	if !present {
		return nil
	}
	// Resource entry keys are not type-checked, only their values.
	var entries []any
	switch resources := raw.(type) {
	case map[string]any:
		for _, uri := range resources {
			entries = append(entries, uri)
		}
	case map[any]any:
		for _, uri := range resources {
			entries = append(entries, uri)
		}
	default:
		return NewTypeError(
			"resources attribute value must be a dictionary that maps " +
				"resource name strings to file path or URI strings",
		)
	}
	for _, uri := range entries {
		if _, ok := uri.(string); !ok {
			return NewTypeError("each resource entry value must be a path or URI string")
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// InputsValidator - Validates the optional inputs attribute
// -----------------------------------------------------------------------------

type InputsValidator struct {
	candidate map[string]any
}

func NewInputsValidator(candidate map[string]any) *InputsValidator {
	return &InputsValidator{candidate: candidate}
}

func (v *InputsValidator) Validate() error {
	raw, present := v.candidate["inputs"]
	if !present {
		return nil
	}
	switch inputs := raw.(type) {
	case map[string]any:
		for _, schema := range inputs {
			if err := validateInputSchema(schema); err != nil {
				return err
			}
		}
	case map[any]any:
		for nameOrURI, schema := range inputs {
			if _, ok := nameOrURI.(string); !ok {
				return NewTypeError(
					"each specified input must be a string corresponding to " +
						"a defined resource name, a valid path, or a valid URI",
				)
			}
			if err := validateInputSchema(schema); err != nil {
				return err
			}
		}
	default:
		return NewTypeError(
			"inputs attribute must be a dictionary mapping resource names, " +
				"paths, and/or URIs to schemas",
		)
	}
	return nil
}

// validateInputSchema accepts null (no schema asserted) or a list of column
// name strings.
func validateInputSchema(schema any) error {
	switch columns := schema.(type) {
	case nil:
		return nil
	case []string:
		return nil
	case []any:
		for _, column := range columns {
			if _, ok := column.(string); !ok {
				return NewTypeError("input schema must be null or a list of strings")
			}
		}
		return nil
	default:
		return NewTypeError("input schema must be null or a list of strings")
	}
}

// -----------------------------------------------------------------------------
// OutputsValidator - Validates the required outputs attribute
// -----------------------------------------------------------------------------

type OutputsValidator struct {
	candidate map[string]any
}

func NewOutputsValidator(candidate map[string]any) *OutputsValidator {
	return &OutputsValidator{candidate: candidate}
}

func (v *OutputsValidator) Validate() error {
	raw, present := v.candidate["outputs"]
	if !present {
		return NewValueError("at least one output must be specified")
	}
	switch outputs := raw.(type) {
	case map[string]any:
		if len(outputs) == 0 {
			return NewValueError("at least one output must be specified")
		}
		for _, schema := range outputs {
			if err := validateOutputSchema(schema); err != nil {
				return err
			}
		}
	case map[any]any:
		if len(outputs) == 0 {
			return NewValueError("at least one output must be specified")
		}
		for nameOrURI, schema := range outputs {
			// Non-string keys surface a value error here, not a type error
			// as in the matching inputs check.
			if _, ok := nameOrURI.(string); !ok {
				return NewValueError(
					"each specified output must be a string corresponding to " +
						"a defined resource name, a valid path, or a valid URI",
				)
			}
			if err := validateOutputSchema(schema); err != nil {
				return err
			}
		}
	default:
		return NewTypeError(
			"outputs attribute must be a dictionary mapping resource names, " +
				"paths, and/or URIs to schemas",
		)
	}
	return nil
}

// validateOutputSchema accepts a list of column descriptors. Descriptors are
// opaque beyond being mappings; their meaning belongs to downstream tooling.
func validateOutputSchema(schema any) error {
	switch descriptors := schema.(type) {
	case []map[string]any:
		return nil
	case []any:
		for _, descriptor := range descriptors {
			if !isMapping(descriptor) {
				return NewTypeError("output schema must be a list of dictionaries")
			}
		}
		return nil
	default:
		return NewTypeError("output schema must be a list of dictionaries")
	}
}

// isMapping reports whether value has one of the decoded-mapping shapes.
// Descriptor keys are opaque and not type-checked.
func isMapping(value any) bool {
	switch value.(type) {
	case map[string]any, map[any]any:
		return true
	default:
		return false
	}
}
