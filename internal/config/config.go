package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	LogLevel  string
	LogFormat string

	DatabaseURL       string
	DBType            string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int

	Storage StorageConfig
	SMTP    SMTPConfig
	JWT     JWTConfig
	Groq    GroqConfig

	TemplatesDir      string
	FrontendURL       string
	HomeURL           string
	SignInRedirectURL string
	ResetPasswordURL  string

	CORSAllowOrigins []string

	RedisAddr string

	CompanyProfilePath string
}

type StorageConfig struct {
	EndpointURL   string
	AccessKey     string
	SecretKey     string
	Region        string
	Bucket        string
	ImageFolder   string
	InvoiceFolder string
	UseSSL        bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type JWTConfig struct {
	Algorithm string
	Secret    string
}

type GroqConfig struct {
	APIKey string
	Model  string
}

// Load reads configuration from environment variables and .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:     getenv("APP_SERVICE", "ventia"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),

		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 25),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 1800),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 300),

		Storage: StorageConfig{
			EndpointURL:   os.Getenv("STORAGE_ENDPOINT_URL"),
			AccessKey:     os.Getenv("ACCESS_KEY"),
			SecretKey:     os.Getenv("SECRET_KEY"),
			Region:        getenv("REGION", "us-east-1"),
			Bucket:        os.Getenv("BUCKET_NAME"),
			ImageFolder:   getenv("IMAGE_FOLDER", "images"),
			InvoiceFolder: getenv("INVOICE_FOLDER", "invoices"),
			UseSSL:        getenvBool("STORAGE_USE_SSL", true),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvInt("SMTP_PORT", 587),
			Username: os.Getenv("COMP_USER"),
			Password: os.Getenv("COMP_PASSWORD"),
			From:     getenv("COMPANY_EMAIL", os.Getenv("COMP_USER")),
		},
		JWT: JWTConfig{
			Algorithm: getenv("JWT_ALGORITHM", "HS256"),
			Secret:    strings.TrimSpace(os.Getenv("JWT_SECRET")),
		},
		Groq: GroqConfig{
			APIKey: os.Getenv("GROQ_API_KEY"),
			Model:  getenv("GROQ_MODEL", "llama-3.1-8b-instant"),
		},

		TemplatesDir:      getenv("TEMPLATES_DIR", "internal/providers/email/templates"),
		FrontendURL:       os.Getenv("FRONTEND_URL"),
		HomeURL:           os.Getenv("HOME_URL"),
		SignInRedirectURL: os.Getenv("SIGN_IN_REDIRECT_URL"),
		ResetPasswordURL:  os.Getenv("RESET_PASSWORD_URL"),

		CORSAllowOrigins: splitList(getenv("CORS_ALLOW_ORIGINS", "")),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		CompanyProfilePath: getenv("COMPANY_PROFILE_PATH", "company.yaml"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	required := map[string]string{
		"DATABASE_URL":         c.DatabaseURL,
		"STORAGE_ENDPOINT_URL": c.Storage.EndpointURL,
		"ACCESS_KEY":           c.Storage.AccessKey,
		"SECRET_KEY":           c.Storage.SecretKey,
		"BUCKET_NAME":          c.Storage.Bucket,
		"SMTP_HOST":            c.SMTP.Host,
		"COMP_USER":            c.SMTP.Username,
		"COMP_PASSWORD":        c.SMTP.Password,
		"JWT_SECRET":           c.JWT.Secret,
	}

	missing := make([]string, 0)
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
