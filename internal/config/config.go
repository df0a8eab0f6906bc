package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type (
	Container struct {
		App       *App
		Token     *Token
		DB        *DB
		HTTP      *HTTP
		Redis     *Redis
		Store     *Store
		SMTP      *SMTP
		Stripe    *Stripe
		RateLimit *RateLimit
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration string
	}

	DB struct {
		Driver   string
		Path     string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	// Store holds the storefront's business constants.
	Store struct {
		Currency             string
		CurrencySymbol       string
		Deposit              decimal.Decimal
		EmptyCatalogFallback bool
		DistributorEmail     string
		DistributorWhatsApp  string
		DistributorPhone     string
	}

	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}

	Stripe struct {
		SecretKey     string
		WebhookSecret string
	}

	RateLimit struct {
		Requests int
		Window   time.Duration
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "rift-storefront"),
		Env:  getEnv("APP_ENV", "development"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: getEnv("TOKEN_DURATION", "24h"),
	}

	db := &DB{
		Driver:   getEnv("DB_DRIVER", "sqlite"),
		Path:     getEnv("DB_PATH", "rift.db"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getEnv("DB_NAME", "rift"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8081"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	deposit, err := decimal.NewFromString(getEnv("DEPOSIT_AMOUNT", "500"))
	if err != nil || deposit.IsNegative() {
		return nil, fmt.Errorf("DEPOSIT_AMOUNT must be a non-negative amount, got %q", os.Getenv("DEPOSIT_AMOUNT"))
	}
	fallback, err := getBool("CATALOG_EMPTY_FALLBACK", true)
	if err != nil {
		return nil, err
	}

	store := &Store{
		Currency:             getEnv("STORE_CURRENCY", "gbp"),
		CurrencySymbol:       getEnv("STORE_CURRENCY_SYMBOL", "£"),
		Deposit:              deposit,
		EmptyCatalogFallback: fallback,
		DistributorEmail:     getEnv("DISTRIBUTOR_EMAIL", "riftbike@outlook.com"),
		DistributorWhatsApp:  getEnv("DISTRIBUTOR_WHATSAPP", "07817174391"),
		DistributorPhone:     getEnv("DISTRIBUTOR_PHONE", "01985-844563"),
	}

	smtpPort, err := getInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	smtp := &SMTP{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", "orders@riftbikes.co.uk"),
	}

	stripe := &Stripe{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}

	requests, err := getInt("RATE_LIMIT_REQUESTS", 20)
	if err != nil {
		return nil, err
	}
	window, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW: %w", err)
	}
	rateLimit := &RateLimit{
		Requests: requests,
		Window:   window,
	}

	return &Container{
		App:       app,
		Token:     token,
		DB:        db,
		HTTP:      http,
		Redis:     redis,
		Store:     store,
		SMTP:      smtp,
		Stripe:    stripe,
		RateLimit: rateLimit,
	}, nil
}

// DSN is the data source name for the configured driver.
func (d *DB) DSN() string {
	if d.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
	}
	return "file:" + d.Path + "?_pragma=busy_timeout(5000)"
}

func (r *Redis) Enabled() bool {
	return r.Address != ""
}

func (s *SMTP) Enabled() bool {
	return s.Host != ""
}

func (s *Stripe) Enabled() bool {
	return s.SecretKey != ""
}

func (r *RateLimit) Enabled() bool {
	return r.Requests > 0 && r.Window > 0
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
