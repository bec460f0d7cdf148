package envfile

import "errors"

var (
	// ErrNotFound indicates the env file does not exist
	ErrNotFound = errors.New("env file not found")

	// ErrNoConfirmer indicates an existing file was found but nobody can approve the overwrite
	ErrNoConfirmer = errors.New("env file exists and no confirmer was provided")

	// ErrInvalidValue indicates a value cannot be written and read back unchanged
	ErrInvalidValue = errors.New("invalid env value")
)
