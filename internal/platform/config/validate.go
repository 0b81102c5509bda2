package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"
)

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"json", "text"}
	exporters    = []string{"stdout", "otlp"}
	sweepKinds   = []string{"bounty", "hackathon"}
	storeDrivers = []string{DriverMemory, DriverSQLite}
)

// problems accumulates validation failures for one config section.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) positive(key string, d time.Duration) {
	if d <= 0 {
		p.addf("%s must be positive, got %s", key, d)
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		p.addf("%s must be one of %v, got %q", key, allowed, got)
	}
}

func (p problems) err() error { return errors.Join(p...) }

// Validate checks every section and reports all failures at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Sweep.validate(),
		c.Notify.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var p problems
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port must be between 1 and 65535, got %d", s.Port)
	}
	p.positive("server.read_timeout", s.ReadTimeout)
	p.positive("server.write_timeout", s.WriteTimeout)
	p.positive("server.check_timeout", s.CheckTimeout)
	return p.err()
}

func (l *LogConfig) validate() error {
	var p problems
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
	return p.err()
}

func (s *StoreConfig) validate() error {
	var p problems
	p.oneOf("store.driver", s.Driver, storeDrivers)
	if s.Driver == DriverSQLite {
		if s.Path == "" {
			p.addf("store.path must not be empty when driver is sqlite")
		}
		if s.BusyTimeout < 0 {
			p.addf("store.busy_timeout must not be negative, got %s", s.BusyTimeout)
		}
	}
	return p.err()
}

func (s *SweepConfig) validate() error {
	if !s.Enabled {
		return nil
	}

	var p problems
	p.positive("sweep.interval", s.Interval)
	if s.Workers < 1 {
		p.addf("sweep.workers must be >= 1, got %d", s.Workers)
	}
	if len(s.Kinds) == 0 {
		p.addf("sweep.kinds must not be empty")
	}
	for _, k := range s.Kinds {
		if !slices.Contains(sweepKinds, k) {
			p.addf("sweep.kinds: %q has no deadline to sweep", k)
		}
	}
	return p.err()
}

func (n *NotifyConfig) validate() error {
	if !n.Enabled {
		return nil
	}
	return n.Client.validate("notify.client")
}

func (cl *ClientConfig) validate(prefix string) error {
	var p problems

	if u, err := url.Parse(cl.BaseURL); cl.BaseURL == "" || err != nil || u.Host == "" {
		p.addf("%s.base_url must be an absolute URL, got %q", prefix, cl.BaseURL)
	}
	p.positive(prefix+".timeout", cl.Timeout)

	if cl.Retry.MaxAttempts < 1 {
		p.addf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts)
	}
	if cl.Retry.Multiplier <= 0 {
		p.addf("%s.retry.multiplier must be positive, got %g", prefix, cl.Retry.Multiplier)
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		p.addf("%s.circuit_breaker.max_failures must be >= 1, got %d", prefix, cl.CircuitBreaker.MaxFailures)
	}

	switch rl := cl.RateLimit; {
	case rl.RequestsPerSecond < 0:
		p.addf("%s.rate_limit.requests_per_second must not be negative", prefix)
	case rl.RequestsPerSecond > 0 && rl.Burst < 1:
		p.addf("%s.rate_limit.burst must be >= 1 when limiting, got %d", prefix, rl.Burst)
	}

	return p.err()
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var p problems
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	if t.Exporter == "otlp" && t.Endpoint == "" {
		p.addf("telemetry.endpoint must not be empty when exporter is otlp")
	}
	return p.err()
}
