package config

const (
	defaultServerPort = 8080

	defaultSweepWorkers = 4

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",
		"server.check_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"store.driver":       DriverMemory,
		"store.path":         "marketplace.db",
		"store.busy_timeout": "5s",

		"sweep.enabled":  false,
		"sweep.interval": "1m",
		"sweep.workers":  defaultSweepWorkers,
		"sweep.kinds":    []string{"bounty", "hackathon"},

		"notify.enabled":                                false,
		"notify.client.base_url":                        "http://localhost:8081",
		"notify.client.timeout":                         "10s",
		"notify.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"notify.client.retry.initial_interval":          "100ms",
		"notify.client.retry.max_interval":              "5s",
		"notify.client.retry.multiplier":                defaultRetryMultiplier,
		"notify.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"notify.client.circuit_breaker.timeout":         "30s",
		"notify.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"notify.client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"notify.client.rate_limit.burst":                defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "marketplace-core",
	}
}
