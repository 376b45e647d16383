package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *PickError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *PickError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// EmptySelection is returned when a commit is attempted with nothing selected.
// The session stays open so the user can select and retry.
func EmptySelection(total int) *PickError {
	return New(ErrCodeEmptySelection, "please select at least one view").
		WithDetail("total", total)
}

// LoadFailed wraps a failure of the host enumeration
func LoadFailed(err error) *PickError {
	return Wrap(err, ErrCodeLoadFailed, "failed to load candidates")
}

// DuplicateIdentity reports two eligible objects sharing one identity
func DuplicateIdentity(id string) *PickError {
	return New(ErrCodeDuplicateIdentity, fmt.Sprintf("duplicate identity '%s'", id)).
		WithDetail("id", id)
}

// SessionClosed is returned by terminal operations on a finished session
func SessionClosed(state string) *PickError {
	return New(ErrCodeSessionClosed, fmt.Sprintf("session already %s", state)).
		WithDetail("state", state)
}

// Cancelled reports that the user dismissed the picker without committing
func Cancelled() *PickError {
	return New(ErrCodeCancelled, "selection cancelled")
}

// ViewFileInvalid creates an error for an unreadable or malformed view export
func ViewFileInvalid(path string, err error) *PickError {
	return Wrap(err, ErrCodeViewFileInvalid, fmt.Sprintf("invalid view file: %s", path)).
		WithDetail("path", path)
}
