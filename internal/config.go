package internal

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RunAddress          = "RUN_ADDRESS"
	DatabaseURI         = "DATABASE_URI"
	LedgerSystemAddress = "LEDGER_SYSTEM_ADDRESS"
	LedgerTimeout       = "LEDGER_TIMEOUT"
	LedgerCacheTTL      = "LEDGER_CACHE_TTL"
	NotifyWebhookURL    = "NOTIFY_WEBHOOK_URL"
	NotifyTimeout       = "NOTIFY_TIMEOUT"
	JWTSecret           = "JWT_SECRET"
	SettlementTolerance = "SETTLEMENT_TOLERANCE"
	TemporalHost        = "TEMPORAL_HOST"
	TemporalNamespace   = "TEMPORAL_NAMESPACE"
	SettlementTaskQueue = "SETTLEMENT_TASK_QUEUE"
	SettlementCron      = "SETTLEMENT_CRON"
)

const (
	defaultRunAddress          = "localhost:8080"
	defaultLedgerTimeout       = 3 * time.Second
	defaultLedgerCacheTTL      = 2 * time.Minute
	defaultNotifyTimeout       = 5 * time.Second
	defaultJWTSecret           = "secret"
	defaultSettlementTolerance = "100"
	defaultTemporalHost        = "localhost:7233"
	defaultTemporalNamespace   = "default"
	defaultSettlementTaskQueue = "cash-settlement-task-queue"
	defaultSettlementCron      = "*/30 * * * *"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
	database = "cartera"
)

type Config struct {
	RunAddress          string
	DatabaseURI         string
	LedgerSystemAddress string
	LedgerTimeout       time.Duration
	LedgerCacheTTL      time.Duration
	NotifyWebhookURL    string
	NotifyTimeout       time.Duration
	JWTSecret           string
	SettlementTolerance decimal.Decimal
	TemporalHost        string
	TemporalNamespace   string
	SettlementTaskQueue string
	SettlementCron      string
}

// NewConfig reads flags from the command line, falling back to environment variables and defaults.
func NewConfig() (*Config, error) {
	return ParseConfig(flag.CommandLine, os.Args[1:])
}

func ParseConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	c := new(Config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s dbname=%s sslmode=disable",
		host, port, user, password, database)

	var tolerance string
	fs.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	fs.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	fs.StringVar(&c.LedgerSystemAddress, "r", setEnvOrDefault(LedgerSystemAddress, ""), "external ledger system address, empty disables it")
	fs.DurationVar(&c.LedgerTimeout, "ledger-timeout", durationEnvOrDefault(LedgerTimeout, defaultLedgerTimeout), "external ledger request timeout")
	fs.DurationVar(&c.LedgerCacheTTL, "ledger-cache-ttl", durationEnvOrDefault(LedgerCacheTTL, defaultLedgerCacheTTL), "external ledger balance cache ttl")
	fs.StringVar(&c.NotifyWebhookURL, "notify-url", setEnvOrDefault(NotifyWebhookURL, ""), "status change webhook url")
	fs.DurationVar(&c.NotifyTimeout, "notify-timeout", durationEnvOrDefault(NotifyTimeout, defaultNotifyTimeout), "status change publish timeout")
	fs.StringVar(&c.JWTSecret, "jwt-secret", setEnvOrDefault(JWTSecret, defaultJWTSecret), "operator token signing secret")
	fs.StringVar(&tolerance, "tolerance", setEnvOrDefault(SettlementTolerance, defaultSettlementTolerance), "cash settlement tolerance")
	fs.StringVar(&c.TemporalHost, "temporal", setEnvOrDefault(TemporalHost, defaultTemporalHost), "temporal frontend host:port")
	fs.StringVar(&c.TemporalNamespace, "namespace", setEnvOrDefault(TemporalNamespace, defaultTemporalNamespace), "temporal namespace")
	fs.StringVar(&c.SettlementTaskQueue, "queue", setEnvOrDefault(SettlementTaskQueue, defaultSettlementTaskQueue), "settlement task queue")
	fs.StringVar(&c.SettlementCron, "cron", setEnvOrDefault(SettlementCron, defaultSettlementCron), "settlement sweep cron schedule, empty disables it")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	t, err := decimal.NewFromString(tolerance)
	if err != nil || t.IsNegative() {
		return nil, fmt.Errorf("invalid settlement tolerance %q", tolerance)
	}
	c.SettlementTolerance = t

	return c, nil
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}

func durationEnvOrDefault(env string, def time.Duration) time.Duration {
	res, e := os.LookupEnv(env)
	if !e {
		return def
	}
	d, err := time.ParseDuration(res)
	if err != nil {
		return def
	}
	return d
}
