package config

import (
	"fmt"
	"os"
	"strings"
)

// Persistence sink names accepted in PERSISTENCE_SINK.
const (
	SinkConsole  = "console"
	SinkDynamoDB = "dynamodb"
	SinkSQLite   = "sqlite"
)

const (
	defaultRecordsTableName = "work_order_records"
	defaultSQLitePath       = "./ordenes.db"
)

// Config is read from the environment (and .env through godotenv autoload).
//
// Supported env vars:
//   - PERSISTENCE_SINK (console|dynamodb|sqlite, default: console)
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - PERSISTENCE_TABLE (default: work_order_records)
//   - SQLITE_PATH (default: ./ordenes.db)
//   - DEMO_SCENARIO_FILE (optional; YAML scenario, embedded default otherwise)
type Config struct {
	PersistenceSink string
	DynamoDB        DynamoDB
	SQLitePath      string
	ScenarioFile    string
}

type DynamoDB struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	TableName       string
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		PersistenceSink: strings.ToLower(strings.TrimSpace(getenvDefault("PERSISTENCE_SINK", SinkConsole))),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			TableName:       getenvDefault("PERSISTENCE_TABLE", defaultRecordsTableName),
		},
		SQLitePath:   getenvDefault("SQLITE_PATH", defaultSQLitePath),
		ScenarioFile: strings.TrimSpace(os.Getenv("DEMO_SCENARIO_FILE")),
	}

	switch cfg.PersistenceSink {
	case SinkConsole, SinkDynamoDB, SinkSQLite:
	default:
		return Config{}, fmt.Errorf("PERSISTENCE_SINK must be one of %s, %s, %s; got %q",
			SinkConsole, SinkDynamoDB, SinkSQLite, cfg.PersistenceSink)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
