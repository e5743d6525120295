package app

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by the store when no record matches.
var ErrNotFound = errors.New("not found")

// ErrSessionExists is returned by the store when the user already holds a
// session in some team.
var ErrSessionExists = errors.New("session already exists")

// ErrTeamFull is returned by the store when the team is at its session
// capacity.
var ErrTeamFull = errors.New("team session capacity reached")

// RejectionError is a failed precondition of Activate or Deactivate. The
// reason is meant for the requesting user; no state was changed.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

func rejectf(format string, args ...interface{}) *RejectionError {
	return &RejectionError{Reason: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err is a precondition rejection and returns
// the user-facing reason.
func IsRejection(err error) (string, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return "", false
}
