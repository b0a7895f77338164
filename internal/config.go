package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host    string `env:"HOST,default=127.0.0.1"`
	TCPPort int    `env:"TCP_PORT,default=1234"`
	UDPPort int    `env:"UDP_PORT,default=1235"`

	BufferSize      int           `env:"BUFFER_SIZE,default=256"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`

	// The heartbeat interval clients use must stay strictly below the
	// liveness limit, or decay alone will evict healthy clients.
	LivenessLimit    time.Duration `env:"LIVENESS_LIMIT,default=20s"`
	LivenessInterval time.Duration `env:"LIVENESS_INTERVAL,default=2s"`

	MetricInterval time.Duration `env:"METRIC_INTERVAL,default=30s"`
	ReportInterval time.Duration `env:"REPORT_INTERVAL,default=1m"`

	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`
	LogLevel        string `env:"LOG_LEVEL,default=INFO"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
