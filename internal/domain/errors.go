package domain

import "errors"

var (
	// ErrInvalidKey is returned for a key without any letters.
	ErrInvalidKey = errors.New("key contains no letters")
	// ErrAnalysisInconclusive is returned when no candidate key passes validation.
	ErrAnalysisInconclusive = errors.New("analysis inconclusive: no key passed validation")
	// ErrNoDictionary is returned when the word list is missing or empty.
	ErrNoDictionary = errors.New("word list missing or empty")
	// ErrNoKeyLength is returned when no key length can be estimated at all.
	ErrNoKeyLength = errors.New("no key length candidates")
	// ErrUnknownStrategy is returned for an unrecognised strategy or solver name.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrSealed is returned when a sealed report is opened without a passphrase.
	ErrSealed = errors.New("report is sealed; passphrase required")
)
