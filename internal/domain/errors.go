package domain

import "errors"

// Sentinel errors returned by repositories and services. Handlers map these
// onto HTTP statuses; callers branch with errors.Is.
var (
	ErrDuplicateUsername      = errors.New("username already taken")
	ErrDuplicateWorkspaceName = errors.New("workspace name already taken")
	ErrNotFound               = errors.New("not found")
	ErrInvalidCredential      = errors.New("invalid username or password")
	ErrInvalidChartType       = errors.New("invalid chart type")
	ErrEmptyColumnSelection   = errors.New("at least one column is required")
	ErrAccessDenied           = errors.New("access denied")
	ErrStoreBusy              = errors.New("store busy")
)
