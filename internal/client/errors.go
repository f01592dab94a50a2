package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork means the backend could not be reached.
	ErrNetwork = errors.New("backend unreachable")
	// ErrNotFound means the backend has no claim with the requested id.
	ErrNotFound = errors.New("claim not found")
	// ErrValidation means the backend answered with a body the portal cannot use.
	ErrValidation = errors.New("malformed backend response")
	// ErrAction means a stage-advance call was rejected.
	ErrAction = errors.New("stage advance rejected")
	// ErrServer means any other non-2xx answer.
	ErrServer = errors.New("backend error")
)

// StatusError is returned for non-2xx responses. It unwraps to one of the
// sentinels above, chosen by Op and Code.
type StatusError struct {
	Op     string
	Code   int
	Detail string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Detail, e.Code)
	}
	return fmt.Sprintf("%s: unexpected status code: %d body=%q", e.Op, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch e.Op {
	case OpAdvanceLogistics, OpAdvanceRepair:
		return ErrAction
	case OpGetClaim:
		if e.Code == http.StatusNotFound {
			return ErrNotFound
		}
	}
	return ErrServer
}
