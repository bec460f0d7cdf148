package venv

import "errors"

var (
	// ErrCreateFailed indicates `python -m venv` exited non-zero
	ErrCreateFailed = errors.New("failed to create virtual environment")

	// ErrPipNotFound indicates the venv has no pip executable
	ErrPipNotFound = errors.New("pip executable not found")

	// ErrPythonNotFound indicates the venv has no python executable
	ErrPythonNotFound = errors.New("python executable not found")

	// ErrInstallFailed indicates `pip install` exited non-zero
	ErrInstallFailed = errors.New("failed to install dependency")
)
