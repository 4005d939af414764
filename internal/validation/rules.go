package validation

// Field is a single request field as decoded from a JSON body. Present
// distinguishes an absent field from one that was sent as null or zero.
type Field struct {
	Name    string
	Value   interface{}
	Present bool
}

// Rule is one predicate in a validation chain. Check returns true when the
// field passes; Message is reported verbatim on failure.
type Rule struct {
	Type    ValidationErrorType
	Message string
	Check   func(f Field) bool
}

// Chain is the ordered rule list for one field. Evaluation halts on the first
// failing rule (bail semantics). Optional chains pass when the field is absent.
type Chain struct {
	Field    string
	Optional bool
	Rules    []Rule
}

// Run evaluates the chain against the body and returns the first failure,
// or nil when the field passes.
func (c Chain) Run(body map[string]interface{}) *FieldError {
	value, present := body[c.Field]
	if !present && c.Optional {
		return nil
	}

	f := Field{Name: c.Field, Value: value, Present: present}
	for _, rule := range c.Rules {
		if !rule.Check(f) {
			return &FieldError{
				Field:   c.Field,
				Type:    rule.Type,
				Message: rule.Message,
				Value:   value,
			}
		}
	}
	return nil
}

// RunChains evaluates each chain independently and aggregates all field
// failures into a single ValidationError. Returns nil when every chain passes.
func RunChains(body map[string]interface{}, chains []Chain) error {
	validationError := NewValidationError()

	for _, chain := range chains {
		if fieldErr := chain.Run(body); fieldErr != nil {
			validationError.Errors = append(validationError.Errors, *fieldErr)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
