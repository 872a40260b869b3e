package roadmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned before any provider call when the profile
	// or goals are missing or malformed.
	ErrInvalidInput = errors.New("invalid roadmap input")

	// ErrProvider covers every failure to obtain a reply from the model:
	// transport, auth, quota, timeout.
	ErrProvider = errors.New("roadmap provider error")

	// ErrEmptyResponse means the provider answered without content.
	ErrEmptyResponse = fmt.Errorf("%w: empty response", ErrProvider)

	// errUnparseable is internal; it selects the fallback roadmap and never
	// leaves this package.
	errUnparseable = errors.New("unparseable roadmap reply")
)
