package telemetry

import (
	"go.trai.ch/sharetree/internal/adapters/telemetry/progrock"
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/zerr"
)

// Tracer backends selectable by name.
const (
	BackendOTel     = "otel"
	BackendProgrock = "progrock"
	BackendNone     = "none"
)

// Select returns the tracer backend with the given name. An empty name selects OpenTelemetry.
// Finished stages are reported to logger. Backends that hold resources implement io.Closer.
func Select(name string, logger ports.Logger) (ports.Tracer, error) {
	switch name {
	case "", BackendOTel:
		return NewProviderTracer(InstrumentationName, NewBridge(logger)), nil
	case BackendProgrock:
		return progrock.New(logger), nil
	case BackendNone:
		return NewNoOpTracer(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownTracer, "tracer", name)
	}
}
