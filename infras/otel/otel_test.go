package otel_test

import (
	"context"
	"errors"
	"testing"
	"todoapp/config"
	"todoapp/infras/otel"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "todoapp-test"

	o := otel.New(cfg)

	ctx, scope := o.NewScope(context.Background(), "service", "service.Create")
	scope.SetAttribute("todo.id", 1)
	scope.End()

	assert.NotNil(t, ctx)
	assert.NoError(t, o.Shutdown(context.Background()))
}

func TestScope_RecordsErrorsAndAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "repository.todo.Get")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"query":    "SELECT 1",
		"resolved": true,
		"count":    3,
		"columns":  []string{"id", "title"},
		"other":    1.5,
	})
	scope.AddEvent("fetched")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, codes.Error, spans[0].Status().Code)
		assert.Equal(t, "boom", spans[0].Status().Description)
		assert.Len(t, spans[0].Attributes(), 5)
		assert.Len(t, spans[0].Events(), 2)
	}
}
