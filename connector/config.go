package connector

import (
	"time"
)

// Config holds the connection settings for one streaming engine endpoint.
// The koanf tags drive LoadConfig; json and yaml tags cover callers that
// marshal configs themselves.
type Config struct {
	Host           string            `json:"host" yaml:"host" koanf:"host"`
	Port           int               `json:"port" yaml:"port" koanf:"port"`
	Database       string            `json:"database" yaml:"database" koanf:"database"`
	Username       string            `json:"username" yaml:"username" koanf:"username"`
	Password       string            `json:"password" yaml:"password" koanf:"password"`
	SSLMode        string            `json:"ssl_mode" yaml:"ssl_mode" koanf:"ssl_mode"`
	Params         map[string]string `json:"params" yaml:"params" koanf:"params"`
	Pool           PoolConfig        `json:"pool" yaml:"pool" koanf:"pool"`
	ConnectTimeout time.Duration     `json:"connect_timeout" yaml:"connect_timeout" koanf:"connect_timeout"`
	QueryTimeout   time.Duration     `json:"query_timeout" yaml:"query_timeout" koanf:"query_timeout"`
	Retry          *RetryConfig      `json:"retry,omitempty" yaml:"retry,omitempty" koanf:"retry"`
}

// PoolConfig defines connection pool settings.
type PoolConfig struct {
	MaxOpen         int           `json:"max_open" yaml:"max_open" koanf:"max_open"`
	MaxIdle         int           `json:"max_idle" yaml:"max_idle" koanf:"max_idle"`
	MaxLifetime     time.Duration `json:"max_lifetime" yaml:"max_lifetime" koanf:"max_lifetime"`
	MaxIdleTime     time.Duration `json:"max_idle_time" yaml:"max_idle_time" koanf:"max_idle_time"`
	HealthCheckFreq time.Duration `json:"health_check_freq" yaml:"health_check_freq" koanf:"health_check_freq"`
}

// RetryConfig defines connection retry behavior. MaxRetries caps total
// attempts; delays grow by the Backoff factor up to MaxDelay.
type RetryConfig struct {
	MaxRetries int           `json:"max_retries" yaml:"max_retries" koanf:"max_retries"`
	BaseDelay  time.Duration `json:"base_delay" yaml:"base_delay" koanf:"base_delay"`
	MaxDelay   time.Duration `json:"max_delay" yaml:"max_delay" koanf:"max_delay"`
	Backoff    float64       `json:"backoff" yaml:"backoff" koanf:"backoff"`
}
