package morphospace

import "errors"

// Sentinel errors returned by validation and query paths.
// Callers should test them with errors.Is, since most call sites
// wrap them with additional context.
var (
	// ErrInvalidLevel reports a semantic level outside the 1–4 range.
	ErrInvalidLevel = errors.New("morphospace: semantic level out of range")

	// ErrRootMismatch reports an attempt to add a morpheme whose root
	// does not match a root-scoped space.
	ErrRootMismatch = errors.New("morphospace: morpheme root does not match space root")

	// ErrLanguageMismatch reports an attempt to add a morpheme whose
	// language does not match a root-scoped space.
	ErrLanguageMismatch = errors.New("morphospace: morpheme language does not match space language")

	// ErrIncommensurable reports a distance computation between morphemes
	// of languages whose morphological types cannot be compared.
	ErrIncommensurable = errors.New("morphospace: morphemes are not commensurable")

	// ErrUnknownLanguage reports a language code with no entry in the
	// supported set.
	ErrUnknownLanguage = errors.New("morphospace: unknown language code")

	// ErrUnknownStrategy reports an index strategy outside the supported set.
	ErrUnknownStrategy = errors.New("morphospace: unknown index strategy")

	// ErrMetadataValue reports a metadata value that is not a string,
	// number, or bool.
	ErrMetadataValue = errors.New("morphospace: metadata value must be a string, number, or bool")
)
