package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address       string   `env:"RUN_ADDRESS"    envDefault:"localhost:8080"`
	Database      string   `env:"DATABASE_URI"`
	LogLvl        string   `env:"LOG_LVL"        envDefault:"info"`
	KafkaBrokers  []string `env:"KAFKA_BROKERS"  envSeparator:","`
	ReceiptTopic  string   `env:"RECEIPT_TOPIC"  envDefault:"receipts"`
	NotifyWorkers int      `env:"NOTIFY_WORKERS" envDefault:"4"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"elaccess-session-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL"    envDefault:"1h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`

	PaymentWindow      time.Duration `env:"PAYMENT_WINDOW"      envDefault:"15m"`
	ProcessingDuration time.Duration `env:"PROCESSING_DURATION" envDefault:"30s"`
	ProcessingTick     time.Duration `env:"PROCESSING_TICK"     envDefault:"1s"`
	RequireAddress     bool          `env:"REQUIRE_ADDRESS"     envDefault:"false"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	brokers := strings.Join(cfg.KafkaBrokers, ",")
	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN, preferences are kept in memory when empty")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&brokers, "k", brokers, "comma separated kafka brokers, receipt events are only logged when empty")
	flag.DurationVar(&cfg.PaymentWindow, "w", cfg.PaymentWindow, "payment window")
	flag.Parse()

	cfg.KafkaBrokers = splitBrokers(brokers)

	return cfg
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
