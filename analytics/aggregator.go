package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/ifmsabrazil/adminpanel/models"
)

const tracerName = "github.com/ifmsabrazil/adminpanel/analytics"

// Source is the read side the aggregator pulls its inputs from.
type Source interface {
	ParticipantsByAssembly(ctx context.Context, assemblyID string) ([]models.Participant, error)
	ParticipantsByType(ctx context.Context, participantType string) ([]models.Participant, error)
	RegistrationsByAssembly(ctx context.Context, assemblyID string) ([]models.Registration, error)
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithClock replaces time.Now as the source of the report's lastUpdated.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// WithTracer sets the tracer used for computation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Aggregator) {
		a.tracer = tracer
	}
}

type Aggregator struct {
	source Source
	logger *slog.Logger
	tracer trace.Tracer
	now    func() time.Time
}

func NewAggregator(source Source, logger *slog.Logger, options ...Option) *Aggregator {
	a := &Aggregator{
		source: source,
		logger: logger,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Compute fetches the assembly's participants and registrations together with
// the global board and coordinator rosters, then projects the report. All
// four fetches run concurrently; any failure fails the whole computation.
func (a *Aggregator) Compute(ctx context.Context, assemblyID string) (models.AnalyticsReport, error) {
	assemblyID = strings.TrimSpace(assemblyID)
	if assemblyID == "" {
		return models.AnalyticsReport{}, ErrInvalidAssemblyID
	}

	ctx, span := a.tracer.Start(ctx, "analytics.Compute",
		trace.WithAttributes(attribute.String("assembly.id", assemblyID)))
	defer span.End()

	in, err := a.fetch(ctx, assemblyID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		a.logger.ErrorContext(ctx, "analytics fetch failed",
			slog.String("assembly_id", assemblyID),
			slog.String("error", err.Error()))

		return models.AnalyticsReport{}, errors.Join(ErrFetchFailed, err)
	}

	report := Project(in, a.now())
	span.SetAttributes(
		attribute.Int("analytics.active_registrations", report.Summary.TotalActiveRegistrations),
		attribute.Int("analytics.predefined_participants", report.Summary.TotalPredefinedParticipants),
	)

	return report, nil
}

func (a *Aggregator) fetch(ctx context.Context, assemblyID string) (Inputs, error) {
	in := Inputs{AssemblyID: assemblyID}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		participants, err := a.source.ParticipantsByAssembly(gctx, assemblyID)
		if err != nil {
			return fmt.Errorf("participants: %w", err)
		}
		in.Participants = participants
		return nil
	})
	g.Go(func() error {
		registrations, err := a.source.RegistrationsByAssembly(gctx, assemblyID)
		if err != nil {
			return fmt.Errorf("registrations: %w", err)
		}
		in.Registrations = registrations
		return nil
	})
	g.Go(func() error {
		ebs, err := a.source.ParticipantsByType(gctx, models.ParticipantTypeEB)
		if err != nil {
			return fmt.Errorf("eb roster: %w", err)
		}
		in.EBRoster = ebs
		return nil
	})
	g.Go(func() error {
		crs, err := a.source.ParticipantsByType(gctx, models.ParticipantTypeCR)
		if err != nil {
			return fmt.Errorf("cr roster: %w", err)
		}
		in.CRRoster = crs
		return nil
	})

	if err := g.Wait(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}
