package util

import "errors"

// Error classes. Every error a service returns wraps exactly one of these so
// the HTTP layer can choose a status code with errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("insufficient permissions")
	ErrPersistence = errors.New("storage failure")
)

var (
	ErrEmptyResponses     = errors.New("no responses submitted")
	ErrDivisionUndefined  = errors.New("no resolvable responses, max score is zero")
	ErrAssessmentInactive = errors.New("assessment is not active")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrResultNotFound     = errors.New("result not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrSubgroupNotFound   = errors.New("subgroup not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownPage        = errors.New("unknown content page")
	ErrInvalidAccessLevel = errors.New("invalid access level")
	ErrInvalidResponse    = errors.New("malformed response")
)
