package roadmap

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator issues roadmap identifiers. Implementations must never repeat.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }

// UUIDs generates random v4 identifiers.
var UUIDs IDGenerator = IDGeneratorFunc(uuid.NewString)

// Clock supplies generation timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })
