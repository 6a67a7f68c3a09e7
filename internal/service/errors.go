package service

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// responses; ErrNotFound and ErrNotOwned intentionally render the same
// to clients so ownership of arbitrary ids is not revealed.
var (
	// ErrNotFound means the target presentation id does not exist.
	ErrNotFound = errors.New("presentation not found")
	// ErrNotOwned means the presentation exists but belongs to another
	// user.
	ErrNotOwned = errors.New("presentation not owned by user")
	// ErrValidation means a required field is missing, empty, or out of
	// range.
	ErrValidation = errors.New("validation failed")
	// ErrEmailTaken means the signup email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrBadCredentials means login failed; it does not distinguish an
	// unknown email from a wrong password.
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrGeneration means the model call or the subsequent persistence
	// write failed. No partial state is committed.
	ErrGeneration = errors.New("generation failed")
)
