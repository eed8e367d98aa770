package telemetry_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/telemetry"
)

// Setup swaps OpenTelemetry globals, so these tests run serially.

func TestSetup_Disabled(t *testing.T) {
	p, err := telemetry.Setup(t.Context(), config.TelemetryConfig{Exporter: "otlp"})

	require.NoError(t, err)
	assert.Nil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(t.Context()))
}

func TestSetup_Stdout(t *testing.T) {
	p, err := telemetry.Setup(t.Context(), config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "exercise-kit-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(t.Context()) })

	require.NotNil(t, p.Metrics)
	assert.ElementsMatch(t,
		[]string{"traceparent", "tracestate", "baggage"},
		otel.GetTextMapPropagator().Fields())
}

func TestSetup_OTLP(t *testing.T) {
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(collector.Close)

	p, err := telemetry.Setup(t.Context(), config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterOTLP,
		Endpoint:    collector.URL,
		ServiceName: "exercise-kit-test",
	})
	require.NoError(t, err)
	assert.NotNil(t, p.Metrics)

	_ = p.Shutdown(t.Context())
}

func TestSetup_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.TelemetryConfig
		wantErr error
	}{
		{
			name:    "otlp without endpoint",
			cfg:     config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP},
			wantErr: telemetry.ErrMissingEndpoint,
		},
		{
			name:    "unknown exporter",
			cfg:     config.TelemetryConfig{Enabled: true, Exporter: "zipkin"},
			wantErr: telemetry.ErrUnsupportedExporter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := telemetry.Setup(t.Context(), tt.cfg)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, p)
		})
	}
}
