package fix

import "errors"

var (
	ErrMalformedTag    = errors.New("fix: malformed tag")
	ErrMalformedNumber = errors.New("fix: malformed number")
	ErrUnknownStrategy = errors.New("fix: unknown strategy")
	ErrNoWantedTags    = errors.New("fix: selective strategy needs at least one tag")
)
