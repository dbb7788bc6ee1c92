// Package telemetry wires the reader's lifecycle events (construction,
// header preflight, prefetch start/stop, terminal errors) into a structured
// log/slog logger backed by an OpenTelemetry log pipeline. The scanning hot
// loop never calls into this package.
package telemetry

import (
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// NewLogger returns a structured logger backed by an in-process
// OpenTelemetry LoggerProvider. Callers that need records exported
// elsewhere should build their own provider and pass the resulting
// *slog.Logger to NewReader via WithLogger instead of calling this.
func NewLogger() *slog.Logger {
	provider := sdklog.NewLoggerProvider()
	return otelslog.NewLogger("github.com/lehoai/simdcsv", otelslog.WithLoggerProvider(provider))
}

// RunID returns a fresh correlation id for one Parse invocation, so that
// concurrent parses against different readers can be told apart in logs.
func RunID() string {
	return uuid.NewString()
}
