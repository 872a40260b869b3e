package roadmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
	"github.com/yungbote/aspirepath-backend/internal/platform/observability"
	"github.com/yungbote/aspirepath-backend/internal/platform/openai"
)

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultTimeout     = 60 * time.Second
)

// Requester obtains one free-text reply for a rendered prompt. Failures are
// always wrapped in ErrProvider; there is no retry.
type Requester interface {
	RequestCompletion(ctx context.Context, prompt string) (string, error)
}

type RequesterFunc func(ctx context.Context, prompt string) (string, error)

func (f RequesterFunc) RequestCompletion(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

type CompletionConfig struct {
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type openAIRequester struct {
	log    *logger.Logger
	client openai.Client
	cfg    CompletionConfig
}

func NewOpenAIRequester(log *logger.Logger, client openai.Client, cfg CompletionConfig) Requester {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &openAIRequester{
		log:    log.With("service", "RoadmapRequester"),
		client: client,
		cfg:    cfg,
	}
}

func (r *openAIRequester) RequestCompletion(ctx context.Context, prompt string) (string, error) {
	ctx, span := observability.Tracer().Start(ctx, "roadmap.request_completion")
	defer span.End()
	span.SetAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.Float64("llm.temperature", r.cfg.Temperature),
		attribute.Int("llm.max_tokens", r.cfg.MaxTokens),
	)

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	temp := r.cfg.Temperature
	reply, err := r.client.GenerateText(ctx, openai.ChatRequest{
		System:      SystemInstruction,
		User:        prompt,
		Temperature: &temp,
		MaxTokens:   r.cfg.MaxTokens,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider call failed")
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if strings.TrimSpace(reply) == "" {
		span.SetStatus(codes.Error, "empty reply")
		return "", ErrEmptyResponse
	}
	span.SetAttributes(attribute.Int("reply.length", len(reply)))
	return reply, nil
}
