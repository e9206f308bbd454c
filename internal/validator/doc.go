// Package validator validates service inputs using go-playground/validator.
//
// Validation failures are InvalidArgument errors whose details map each
// failing field, by its JSON name, to a readable message:
//
//	if err := validator.Validate(input); err != nil {
//	    return nil, err
//	}
package validator
