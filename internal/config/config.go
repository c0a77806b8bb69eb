package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port          string
	DBConn        string
	LogLevel      string
	JWTSecret     string
	EncryptionKey []byte
	CBRURL        string
	CBRMargin     float64

	// Forecast defaults
	IncomeLookbackMonths int
	IncomeMinAmount      float64
	IncomeMinOccurrences int
	ProjectionMonths     int
	MaxProjectionMonths  int
	DebtMaxMonths        int

	// Weekly goal digest
	DigestSchedule string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBConn:         getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=finance sslmode=disable"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		CBRURL:         getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),
		DigestSchedule: getEnv("DIGEST_SCHEDULE", "0 8 * * 1"),
		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       getEnv("SMTP_PORT", "1025"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "forecast@localhost"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	key, err := hex.DecodeString(getEnv("ENCRYPTION_KEY", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"))
	if err != nil {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be hex: %w", err)
	}
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be 16, 24, or 32 bytes, got %d", len(key))
	}
	cfg.EncryptionKey = key

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"INCOME_LOOKBACK_MONTHS", 6, &cfg.IncomeLookbackMonths},
		{"INCOME_MIN_OCCURRENCES", 3, &cfg.IncomeMinOccurrences},
		{"PROJECTION_MONTHS", 12, &cfg.ProjectionMonths},
		{"MAX_PROJECTION_MONTHS", 120, &cfg.MaxProjectionMonths},
		{"DEBT_MAX_MONTHS", 360, &cfg.DebtMaxMonths},
	}
	for _, v := range ints {
		n, err := getEnvInt(v.key, v.def)
		if err != nil {
			return nil, err
		}
		*v.dst = n
	}

	if cfg.IncomeMinAmount, err = getEnvFloat("INCOME_MIN_AMOUNT", 25); err != nil {
		return nil, err
	}
	if cfg.CBRMargin, err = getEnvFloat("CBR_MARGIN", 0); err != nil {
		return nil, err
	}
	if cfg.ProjectionMonths > cfg.MaxProjectionMonths {
		return nil, fmt.Errorf("PROJECTION_MONTHS (%d) exceeds MAX_PROJECTION_MONTHS (%d)", cfg.ProjectionMonths, cfg.MaxProjectionMonths)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, value)
	}
	return n, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return f, nil
}
