package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2000
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Extraction
	LLM       LLMConfig
	Extractor ExtractorConfig

	// Reminder stores
	Reminders RemindersConfig
	Google    GoogleConfig
	Export    ExportConfig

	// Drop folder
	Inbox InboxConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	MaxUploadMB int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// LLMConfig describes the OpenAI-compatible endpoint. Temperature and
// MaxTokens are user preferences kept as strings; read them through
// ParsedTemperature and ParsedMaxTokens.
type LLMConfig struct {
	APIURL                string
	APIKey                string
	DefaultModel          string
	Temperature           string
	MaxTokens             string
	ExtractionTemperature float64
	ExtractionMaxTokens   int
	Timeout               time.Duration
	Breaker               BreakerConfig
}

type BreakerConfig struct {
	Enabled      bool
	MinRequests  uint32
	FailureRatio float64
	OpenTimeout  time.Duration
}

type ExtractorConfig struct {
	MaxChars  int
	MaxPages  int
	Timeout   time.Duration
	OCRDPI    int
	OCRLang   string
	Pdftotext string
	Pdftoppm  string
	Tesseract string
}

type RemindersConfig struct {
	Backend       string // applescript, gtasks or gcalendar
	ListName      string
	Timezone      string
	Osascript     string
	EventDuration time.Duration
}

type GoogleConfig struct {
	CredentialsPath string
	TokenPath       string
}

type ExportConfig struct {
	Source      string // store or appledb
	AppleDBGlob string
	Days        int
}

// InboxConfig drives the drop-folder watcher. Enabled starts it with serve;
// the watch command ignores it.
type InboxConfig struct {
	Enabled  bool
	Dir      string
	Interval time.Duration
	ListName string
}

// ParsedTemperature returns the temperature preference, or 0.7 when it is
// empty, not a number or outside [0,1].
func (c LLMConfig) ParsedTemperature() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Temperature), 64)
	if err != nil || v < 0 || v > 1 {
		return defaultTemperature
	}
	return v
}

// ParsedMaxTokens returns the max tokens preference, or 2000 when it is
// empty, not an integer or not positive.
func (c LLMConfig) ParsedMaxTokens() int {
	v, err := strconv.Atoi(strings.TrimSpace(c.MaxTokens))
	if err != nil || v <= 0 {
		return defaultMaxTokens
	}
	return v
}

// Load loads configuration using Viper. A .env file in the working directory
// is read first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/reminder-extractor/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the
// default locations.
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/reminder-extractor/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.MaxUploadMB = v.GetInt("http_server.max_upload_mb")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// LLM
	cfg.LLM.APIURL = v.GetString("llm.api_url")
	cfg.LLM.APIKey = expandEnvVar(v, v.GetString("llm.api_key"))
	cfg.LLM.DefaultModel = v.GetString("llm.default_model")
	cfg.LLM.Temperature = v.GetString("llm.temperature")
	cfg.LLM.MaxTokens = v.GetString("llm.max_tokens")
	cfg.LLM.ExtractionTemperature = v.GetFloat64("llm.extraction_temperature")
	cfg.LLM.ExtractionMaxTokens = v.GetInt("llm.extraction_max_tokens")
	cfg.LLM.Timeout = v.GetDuration("llm.timeout")
	cfg.LLM.Breaker.Enabled = v.GetBool("llm.breaker.enabled")
	cfg.LLM.Breaker.MinRequests = v.GetUint32("llm.breaker.min_requests")
	cfg.LLM.Breaker.FailureRatio = v.GetFloat64("llm.breaker.failure_ratio")
	cfg.LLM.Breaker.OpenTimeout = v.GetDuration("llm.breaker.open_timeout")

	// Text extractor
	cfg.Extractor.MaxChars = v.GetInt("extractor.max_chars")
	cfg.Extractor.MaxPages = v.GetInt("extractor.max_pages")
	cfg.Extractor.Timeout = v.GetDuration("extractor.timeout")
	cfg.Extractor.OCRDPI = v.GetInt("extractor.ocr_dpi")
	cfg.Extractor.OCRLang = v.GetString("extractor.ocr_lang")
	cfg.Extractor.Pdftotext = v.GetString("extractor.pdftotext")
	cfg.Extractor.Pdftoppm = v.GetString("extractor.pdftoppm")
	cfg.Extractor.Tesseract = v.GetString("extractor.tesseract")

	// Reminder stores
	cfg.Reminders.Backend = strings.ToLower(v.GetString("reminders.backend"))
	cfg.Reminders.ListName = v.GetString("reminders.list_name")
	cfg.Reminders.Timezone = v.GetString("reminders.timezone")
	cfg.Reminders.Osascript = v.GetString("reminders.osascript")
	cfg.Reminders.EventDuration = v.GetDuration("reminders.event_duration")

	cfg.Google.CredentialsPath = expandEnvVar(v, v.GetString("google.credentials_path"))
	cfg.Google.TokenPath = v.GetString("google.token_path")

	cfg.Export.Source = strings.ToLower(v.GetString("export.source"))
	cfg.Export.AppleDBGlob = v.GetString("export.apple_db_glob")
	cfg.Export.Days = v.GetInt("export.days")

	// Inbox
	cfg.Inbox.Enabled = v.GetBool("inbox.enabled")
	cfg.Inbox.Dir = v.GetString("inbox.dir")
	cfg.Inbox.Interval = v.GetDuration("inbox.interval")
	cfg.Inbox.ListName = v.GetString("inbox.list_name")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Reminders.Backend {
	case "applescript", "gtasks", "gcalendar", "none":
	default:
		return fmt.Errorf("reminders.backend %q is not one of applescript, gtasks, gcalendar, none", c.Reminders.Backend)
	}
	switch c.Export.Source {
	case "store", "appledb":
	default:
		return fmt.Errorf("export.source %q is not one of store, appledb", c.Export.Source)
	}
	if c.LLM.ExtractionTemperature < 0 || c.LLM.ExtractionTemperature > 1 {
		return fmt.Errorf("llm.extraction_temperature %.2f out of range [0,1]", c.LLM.ExtractionTemperature)
	}
	if c.Inbox.Interval <= 0 {
		return fmt.Errorf("inbox.interval must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.max_upload_mb", 25)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	// LLM defaults
	v.SetDefault("llm.api_url", "http://localhost:1337/v1/chat/completions")
	v.SetDefault("llm.default_model", "llama3.2-3b-instruct")
	v.SetDefault("llm.temperature", "0.7")
	v.SetDefault("llm.max_tokens", "2000")
	v.SetDefault("llm.extraction_temperature", 0.1)
	v.SetDefault("llm.extraction_max_tokens", 1500)
	v.SetDefault("llm.timeout", "120s")
	v.SetDefault("llm.breaker.enabled", true)
	v.SetDefault("llm.breaker.min_requests", 3)
	v.SetDefault("llm.breaker.failure_ratio", 0.6)
	v.SetDefault("llm.breaker.open_timeout", "30s")

	v.SetDefault("extractor.max_chars", 50000)
	v.SetDefault("extractor.timeout", "60s")
	v.SetDefault("extractor.ocr_dpi", 300)
	v.SetDefault("extractor.ocr_lang", "eng")

	v.SetDefault("reminders.backend", "applescript")
	v.SetDefault("reminders.list_name", "To Do")
	v.SetDefault("reminders.osascript", "osascript")
	v.SetDefault("reminders.event_duration", "30m")

	v.SetDefault("google.token_path", "token.json")

	v.SetDefault("export.source", "store")
	v.SetDefault("export.apple_db_glob", "~/Library/Reminders/Container_v1/Stores/Data-*.sqlite")
	v.SetDefault("export.days", 7)

	v.SetDefault("inbox.enabled", false)
	v.SetDefault("inbox.dir", "./inbox")
	v.SetDefault("inbox.interval", "1m")
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	name := value[2 : len(value)-1]
	if envValue := os.Getenv(name); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(name)); envValue != "" {
		return envValue
	}
	return ""
}
