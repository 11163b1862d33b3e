package eventqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the dispatcher tunables. Values come from environment
// variables with the prefix "QC_ANALYTICS_".
// Example: QC_ANALYTICS_SHARDS=8 QC_ANALYTICS_QUEUE_SIZE=256 .
type Config struct {
	Shards         int           `envconfig:"SHARDS"          default:"2"`
	QueueSize      int           `envconfig:"QUEUE_SIZE"      default:"256"`
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"50ms"`

	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"3"`
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"250ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"5s"`
}

// LoadConfig populates Config from environment variables.
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("QC_ANALYTICS", &c)
}
