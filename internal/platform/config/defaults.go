package config

// defaults is the bottom layer of every load. YAML files and APP_* variables
// override it key by key.
func defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"host":          "0.0.0.0",
			"port":          8080,
			"read_timeout":  "5s",
			"write_timeout": "10s",
			"idle_timeout":  "2m",
		},
		"log": map[string]any{"level": "info", "format": "json"},
		"client": map[string]any{
			"base_url": "http://localhost:8081",
			"timeout":  "30s",
			"retry": map[string]any{
				"max_attempts":     3,
				"initial_interval": "100ms",
				"max_interval":     "10s",
				"multiplier":       2.0,
			},
			"circuit_breaker": map[string]any{
				"max_failures":    5,
				"timeout":         "30s",
				"half_open_limit": 1,
			},
			// Zero requests per second leaves the client unthrottled.
			"rate_limit": map[string]any{"requests_per_second": 0, "burst_size": 1},
		},
		"telemetry": map[string]any{
			"enabled":      false,
			"exporter":     "stdout",
			"endpoint":     "",
			"service_name": "exercise-kit",
		},
		"registration": map[string]any{
			"session_ttl":     "30m",
			"max_sessions":    1000,
			"success_message": "Registration Successful!",
		},
		"generator": map[string]any{"mode": GeneratorTemplate, "latency": "0s", "workers": 4},
		"store":     map[string]any{"driver": StoreMemory, "dsn": ""},
	}
}
