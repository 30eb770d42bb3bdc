package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kinnective/jobextractor/internal/domain"
	"github.com/kinnective/jobextractor/pkg/logging"
)

// Result is one normalized extraction: a schema-complete job record and,
// when requested, the matching company record.
type Result struct {
	Job                *domain.JobRecord
	Company            *domain.CompanyRecord
	CompanySynthesized bool
	RawResponse        string
}

type Service interface {
	// Validate runs the heuristic input gate without calling the backend.
	Validate(text string) (bool, string)

	// Extract runs the full pipeline: validate, prompt, one backend call,
	// normalize, resolve dates.
	Extract(ctx context.Context, rawText string, includeCompany bool) (Result, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	generator     Generator
	clock         func() time.Time
	recencyWindow time.Duration
	logger        *logging.Logger
}

// WithGenerator sets the generative backend
func WithGenerator(g Generator) Option {
	return func(c *config) {
		c.generator = g
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithRecencyWindow sets how old a backend-supplied posting date may be
// before it is discarded
func WithRecencyWindow(window time.Duration) Option {
	return func(c *config) {
		c.recencyWindow = window
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock:         time.Now,
		recencyWindow: DefaultRecencyWindow,
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.generator == nil {
		return nil, fmt.Errorf("extract.Service: generator is required")
	}

	return &service{
		generator:     cfg.generator,
		clock:         cfg.clock,
		recencyWindow: cfg.recencyWindow,
		logger:        cfg.logger,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(g Generator, logger *logging.Logger, recencyWindow time.Duration) (Service, error) {
	return NewService(
		WithGenerator(g),
		WithLogger(logger),
		WithRecencyWindow(recencyWindow),
	)
}

type service struct {
	generator     Generator
	clock         func() time.Time
	recencyWindow time.Duration
	logger        *logging.Logger
}

func (s *service) Validate(text string) (bool, string) {
	return Validate(text)
}

// Extract performs exactly one backend call per invocation; retries are a
// caller decision.
func (s *service) Extract(ctx context.Context, rawText string, includeCompany bool) (Result, error) {
	text := strings.TrimSpace(rawText)

	if ok, reason := Validate(text); !ok {
		return Result{}, &ValidationError{Reason: reason}
	}

	prompt := BuildPrompt(text, includeCompany)

	raw, err := s.generator.Generate(ctx, SystemInstruction, prompt)
	if err != nil {
		return Result{}, &BackendError{Err: err}
	}
	s.logger.Debug("backend response received",
		"backend", s.generator.Name(),
		"bytes", len(raw),
	)

	now := s.clock()
	job, company, synthesized, err := normalize(raw, now)
	if err != nil {
		return Result{}, err
	}

	resolveTemporal(text, job, now, s.recencyWindow)

	res := Result{
		Job:         job,
		RawResponse: raw,
	}
	if includeCompany {
		res.Company = company
		res.CompanySynthesized = synthesized
	}
	return res, nil
}
