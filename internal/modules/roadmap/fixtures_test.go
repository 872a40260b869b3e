package roadmap

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func sampleProfile() *domain.UserProfile {
	return &domain.UserProfile{
		Email:           "a@b.com",
		EducationLevel:  "SHS",
		FinancialStatus: "MODERATE",
		Skills:          []string{},
		Location:        "Accra, Ghana",
	}
}

func sampleGoals() []domain.Goal {
	return []domain.Goal{{
		Title:       "Become a Developer",
		Category:    "CAREER",
		Description: "Learn to code",
		Timeline:    "MEDIUM_TERM",
	}}
}

type fakeRequester struct {
	reply string
	err   error
	calls atomic.Int32
	last  string
}

func (f *fakeRequester) RequestCompletion(_ context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.last = prompt
	return f.reply, f.err
}

type counterIDs struct{ n atomic.Int64 }

func (c *counterIDs) NewID() string { return fmt.Sprintf("rm_%d", c.n.Add(1)) }

type recordingNotifier struct {
	err    error
	panics bool
	saved  []*domain.Roadmap
}

func (n *recordingNotifier) Save(_ context.Context, r *domain.Roadmap) error {
	if n.panics {
		panic("store exploded")
	}
	n.saved = append(n.saved, r)
	return n.err
}

var errBoom = errors.New("boom")

func newTestInterpreter() *Interpreter {
	return NewInterpreter(logger.Nop(), &counterIDs{}, ClockFunc(func() time.Time { return fixedNow }))
}
