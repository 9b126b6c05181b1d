package telemetry_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/sharetree/internal/adapters/telemetry"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/sharetree/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupMonitor() (*tracetest.SpanRecorder, *trace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	return sr, tp
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")

	ctx := context.Background()
	tracer.EmitPlan(ctx, []string{"react", "lodash"})

	_ = tp.ForceFlush(ctx)
	// Without a span in ctx there is nothing to attach the event to.
	assert.Empty(t, sr.Ended())

	ctx, span := tp.Tracer("test").Start(ctx, "root")
	tracer.EmitPlan(ctx, []string{"react", "lodash"})
	span.End()

	_ = tp.ForceFlush(ctx)
	spans := sr.Ended()
	require.Len(t, spans, 1)

	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
	assert.Equal(t, []string{"react", "lodash"}, events[0].Attributes[0].Value.AsStringSlice())
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")
	ctx, span := tracer.Start(context.Background(), "Attaching Used Exports", ports.WithAttribute("chunk", "main"))
	span.End()

	_ = tp.ForceFlush(ctx)
	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Attaching Used Exports", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("chunk", "main"))
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")
	ctx, span := tracer.Start(context.Background(), "attr-test")

	span.SetAttribute("str", "val")
	span.SetAttribute("int", 123)
	span.SetAttribute("int64", int64(456))
	span.SetAttribute("float", 3.14)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"a", "b"})
	span.SetAttribute("unknown", struct{}{})

	span.End()

	_ = tp.ForceFlush(ctx)
	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrMap := make(map[string]any)
	for _, a := range spans[0].Attributes() {
		switch a.Value.Type() {
		case attribute.STRING:
			attrMap[string(a.Key)] = a.Value.AsString()
		case attribute.INT64:
			attrMap[string(a.Key)] = a.Value.AsInt64()
		case attribute.FLOAT64:
			attrMap[string(a.Key)] = a.Value.AsFloat64()
		case attribute.BOOL:
			attrMap[string(a.Key)] = a.Value.AsBool()
		case attribute.STRINGSLICE:
			attrMap[string(a.Key)] = a.Value.AsStringSlice()
		}
	}

	assert.Equal(t, "val", attrMap["str"])
	assert.Equal(t, int64(123), attrMap["int"])
	assert.Equal(t, int64(456), attrMap["int64"])
	assert.InEpsilon(t, 3.14, attrMap["float"], 0.001)
	assert.Equal(t, true, attrMap["bool"])
	assert.Equal(t, []string{"a", "b"}, attrMap["slice"])
	assert.Equal(t, "{}", attrMap["unknown"])
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")
	ctx, span := tracer.Start(context.Background(), "error-test")
	span.RecordError(errors.New("boom"))
	span.End()

	_ = tp.ForceFlush(ctx)
	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
}

func TestOTelSpan_Write(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")

	ctx, span := tracer.Start(context.Background(), "log-test")
	n, err := span.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	span.End()

	_ = tp.ForceFlush(ctx)
	spans := sr.Ended()
	require.Len(t, spans, 1)

	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "log", events[0].Name)
	assert.Equal(t, "hello", events[0].Attributes[0].Value.AsString())
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		check   func(t *testing.T, tracer ports.Tracer)
	}{
		{"Default", "", func(t *testing.T, tracer ports.Tracer) {
			assert.IsType(t, &telemetry.OTelTracer{}, tracer)
			closer, ok := tracer.(io.Closer)
			require.True(t, ok)
			require.NoError(t, closer.Close())
		}},
		{"OTel", telemetry.BackendOTel, func(t *testing.T, tracer ports.Tracer) {
			assert.IsType(t, &telemetry.OTelTracer{}, tracer)
		}},
		{"None", telemetry.BackendNone, func(t *testing.T, tracer ports.Tracer) {
			assert.IsType(t, &telemetry.NoOpTracer{}, tracer)
		}},
		{"Progrock", telemetry.BackendProgrock, func(t *testing.T, tracer ports.Tracer) {
			assert.NotNil(t, tracer)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer, err := telemetry.Select(tt.backend, nil)
			require.NoError(t, err)
			tt.check(t, tracer)
		})
	}
}

func TestSelect_Unknown(t *testing.T) {
	_, err := telemetry.Select("jaeger", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tracer backend")
}

func TestProviderTracer_RecordsWithoutGlobalProvider(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewProviderTracer("test-tracer", sr)

	ctx, span := tracer.Start(context.Background(), "Optimizing Shared Dependencies")
	tracer.EmitPlan(ctx, []string{"react"})
	span.End()

	require.NoError(t, tracer.Close())
	spans := sr.Ended()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "plan_emitted", spans[0].Events()[0].Name)
}

func TestBridge_LogsFinishedStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var infos, warns []string
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) }).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warns = append(warns, msg) }).AnyTimes()

	tracer := telemetry.NewProviderTracer("test-tracer", telemetry.NewBridge(logger))
	defer func() { _ = tracer.Close() }()

	ctx := context.Background()
	_, span := tracer.Start(ctx, "Marking Fallback Exports", ports.WithAttribute("session", int64(4)))
	span.SetAttribute("pairs", 2)
	span.End()

	_, failed := tracer.Start(ctx, "Patching Stats Manifest")
	failed.RecordError(errors.New("bad manifest"))
	failed.End()

	require.Len(t, infos, 1)
	assert.Regexp(t, `^Marking Fallback Exports finished in \S+ \(pairs=2, session=4\)$`, infos[0])
	require.Len(t, warns, 1)
	assert.Regexp(t, `^Patching Stats Manifest failed after \S+: bad manifest$`, warns[0])
}
