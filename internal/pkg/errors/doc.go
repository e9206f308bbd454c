// Package errors provides application error types for the datasets service.
//
// Every error leaving the service layer carries one of three kinds:
//
//   - InvalidArgument: malformed identifier, missing field, failed domain rule (400)
//   - NotFound: no matching non-deleted resource (404)
//   - Unknown: unexpected collaborator failure (500)
//
// # Usage
//
//	return apperrors.NotFound("dataset")
//	return apperrors.InvalidArgument("Local datasets must have project value set.")
//
// Errors wrapped with fmt.Errorf keep their kind:
//
//	return fmt.Errorf("failed to load dataset: %w", apperrors.NotFound("dataset"))
//
// Anything without an AppError in its chain is reported as Unknown by KindOf.
package errors
