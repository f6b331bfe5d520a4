package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/howaiconnects/seogate/generation"
)

// Kind tags a handler failure so it maps to a distinct status code,
// instead of collapsing every failure into a 500.
type Kind int

const (
	// KindValidation is a client-caused failure (bad input).
	KindValidation Kind = iota
	// KindUpstream is a dependency failure (model host, prompt store,
	// records database, data providers).
	KindUpstream
	// KindInternal is everything else.
	KindInternal
)

// Error is a tagged handler failure. Stage names the workflow step for
// the response detail, e.g. "Analysis failed: <message>".
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationErr(stage, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Stage: stage, Err: fmt.Errorf(format, args...)}
}

func upstreamErr(stage string, err error) *Error {
	return &Error{Kind: KindUpstream, Stage: stage, Err: err}
}

func internalErr(stage string, err error) *Error {
	return &Error{Kind: KindInternal, Stage: stage, Err: err}
}

// statusFor maps a failure to its HTTP status code.
func statusFor(err error) int {
	var tagged *Error
	if errors.As(err, &tagged) {
		switch tagged.Kind {
		case KindValidation:
			return http.StatusBadRequest
		case KindUpstream:
			return http.StatusBadGateway
		}
		return http.StatusInternalServerError
	}

	var genErr *generation.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
