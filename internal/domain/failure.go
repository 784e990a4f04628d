package domain

import "errors"

// FailureKind classifies why a query or token could not be rolled.
type FailureKind string

const (
	// MalformedToken means the token does not match <amount>d<sides>
	MalformedToken FailureKind = "malformed_token"
	// InvalidRange means amount or sides fall outside the permitted bounds
	InvalidRange FailureKind = "invalid_range"
	// EmptyQuery means the query contained no tokens at all
	EmptyQuery FailureKind = "empty_query"
)

// Sentinel errors matched by ParseFailure.Is.
var (
	ErrMalformedToken = errors.New("malformed dice token")
	ErrInvalidRange   = errors.New("dice value out of range")
	ErrEmptyQuery     = errors.New("empty dice query")
)

// ParseFailure reports why a single token was rejected.
type ParseFailure struct {
	Token  string
	Kind   FailureKind
	Reason string
}

func (f *ParseFailure) Error() string {
	if f.Token == "" {
		return f.Reason
	}
	return f.Token + ": " + f.Reason
}

// Is lets callers match a failure with errors.Is against the sentinel for its kind.
func (f *ParseFailure) Is(target error) bool {
	switch f.Kind {
	case MalformedToken:
		return target == ErrMalformedToken
	case InvalidRange:
		return target == ErrInvalidRange
	case EmptyQuery:
		return target == ErrEmptyQuery
	default:
		return false
	}
}
