package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/labtrack/labtrack/internal/component/domain"
)

var tracer = otel.Tracer("component-repository")

// TracingComponentRepository wraps a ComponentRepository with tracing
type TracingComponentRepository struct {
	domain.ComponentRepository
}

// NewTracingComponentRepository creates a repository decorator that
// records a span per operation
func NewTracingComponentRepository(inner domain.ComponentRepository) *TracingComponentRepository {
	return &TracingComponentRepository{ComponentRepository: inner}
}

// CreateWithContext records a span around Create
func (r *TracingComponentRepository) CreateWithContext(ctx context.Context, component *domain.Component) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("component.name", component.Name),
			attribute.String("component.category", component.Category),
			attribute.Int("component.quantity", component.Quantity),
		),
	)
	defer span.End()

	err := r.ComponentRepository.Create(component)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("component.id", component.ID))
	return nil
}

// FindByIDWithContext records a span around FindByID
func (r *TracingComponentRepository) FindByIDWithContext(ctx context.Context, id string) (*domain.Component, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("component.id", id),
		),
	)
	defer span.End()

	component, err := r.ComponentRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("component.name", component.Name),
		attribute.Int("component.quantity", component.Quantity),
	)
	return component, nil
}

// UpdateWithContext records a span around Update
func (r *TracingComponentRepository) UpdateWithContext(ctx context.Context, component *domain.Component) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("component.id", component.ID),
			attribute.Int("component.quantity", component.Quantity),
		),
	)
	defer span.End()

	err := r.ComponentRepository.Update(component)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// DeleteWithContext records a span around Delete
func (r *TracingComponentRepository) DeleteWithContext(ctx context.Context, id string) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.String("component.id", id),
		),
	)
	defer span.End()

	err := r.ComponentRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
