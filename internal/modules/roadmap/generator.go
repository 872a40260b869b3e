package roadmap

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/ctxutil"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
	"github.com/yungbote/aspirepath-backend/internal/platform/observability"
)

const DefaultPersistTimeout = 5 * time.Second

// Notifier receives every assembled roadmap. Its failures are logged and
// dropped: a roadmap counts as generated once it is assembled.
type Notifier interface {
	Save(ctx context.Context, r *domain.Roadmap) error
}

type NotifierFunc func(ctx context.Context, r *domain.Roadmap) error

func (f NotifierFunc) Save(ctx context.Context, r *domain.Roadmap) error { return f(ctx, r) }

type GeneratorDeps struct {
	Requester      Requester
	Interpreter    *Interpreter
	Notifier       Notifier
	PersistTimeout time.Duration
}

// Generator runs prompt -> completion -> interpretation -> save.
type Generator struct {
	log            *logger.Logger
	requester      Requester
	interpreter    *Interpreter
	notifier       Notifier
	persistTimeout time.Duration
	validate       *validator.Validate
}

func NewGenerator(log *logger.Logger, deps GeneratorDeps) (*Generator, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if deps.Requester == nil {
		return nil, fmt.Errorf("requester required")
	}
	if deps.Interpreter == nil {
		deps.Interpreter = NewInterpreter(log, nil, nil)
	}
	if deps.PersistTimeout <= 0 {
		deps.PersistTimeout = DefaultPersistTimeout
	}
	return &Generator{
		log:            log.With("service", "RoadmapGenerator"),
		requester:      deps.Requester,
		interpreter:    deps.Interpreter,
		notifier:       deps.Notifier,
		persistTimeout: deps.PersistTimeout,
		validate:       validator.New(),
	}, nil
}

// Generate returns ErrInvalidInput or ErrProvider-wrapped errors only.
// Unparseable replies and save failures never surface.
func (g *Generator) Generate(ctx context.Context, profile *domain.UserProfile, goals []domain.Goal) (*domain.Roadmap, error) {
	if err := g.checkInput(profile, goals); err != nil {
		return nil, err
	}
	ctx, span := observability.Tracer().Start(ctx, "roadmap.generate")
	defer span.End()
	span.SetAttributes(attribute.Int("goals.count", len(goals)))

	log := g.log.With(ctxutil.LogFields(ctx)...)
	log.Info("generating roadmap", "goals", len(goals), "education_level", profile.EducationLevel)

	prompt := BuildPrompt(*profile, goals)
	reply, err := g.requester.RequestCompletion(ctx, prompt)
	if err != nil {
		log.Error("roadmap provider call failed", "error", err)
		return nil, err
	}

	rm := g.interpreter.Interpret(reply, *profile, goals)
	span.SetAttributes(attribute.Int("roadmap.steps", len(rm.Steps)))

	g.notify(ctx, log, rm)
	log.Info("roadmap generated", "roadmap_id", rm.ID, "steps", len(rm.Steps))
	return rm, nil
}

func (g *Generator) checkInput(profile *domain.UserProfile, goals []domain.Goal) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is required", ErrInvalidInput)
	}
	if len(goals) == 0 {
		return fmt.Errorf("%w: at least one goal is required", ErrInvalidInput)
	}
	if err := g.validate.Struct(profile); err != nil {
		return fmt.Errorf("%w: profile: %v", ErrInvalidInput, err)
	}
	for i := range goals {
		if err := g.validate.Struct(goals[i]); err != nil {
			return fmt.Errorf("%w: goal %d: %v", ErrInvalidInput, i, err)
		}
	}
	return nil
}

// notify hands the roadmap to the notifier on a context detached from the
// request, bounded by persistTimeout. Errors and panics are logged only.
func (g *Generator) notify(ctx context.Context, log *logger.Logger, rm *domain.Roadmap) {
	if g.notifier == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			log.Warn("roadmap save panicked", "roadmap_id", rm.ID, "panic", rec)
		}
	}()
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.persistTimeout)
	defer cancel()
	if err := g.notifier.Save(saveCtx, rm); err != nil {
		log.Warn("roadmap save failed", "roadmap_id", rm.ID, "error", err)
	}
}
