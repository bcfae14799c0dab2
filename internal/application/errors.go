package application

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is deactivated")
	ErrUserNotFound       = errors.New("user not found")
	// ErrInvalidState is returned for undefined workflow transitions,
	// e.g. approving a rejected listing.
	ErrInvalidState = errors.New("invalid state transition")
)
