package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	RedirectURL string `yaml:"redirect_url" env:"REDIRECT_URL" env-default:"http://thathichirag.xyz"`
	HTTPServer  `yaml:"http_server"`
	Email       `yaml:"email"`
	Recaptcha   `yaml:"recaptcha"`
}

type HTTPServer struct {
	Host           string        `yaml:"host" env:"HOST" env-default:""`
	Port           int           `yaml:"port" env:"PORT" env-default:"5000"`
	Timeout        time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"60s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT" env-default:"30s"`
	CORSOrigins    []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

type Email struct {
	Address    string `yaml:"address" env:"EMAIL" env-required:"true"`
	Password   string `yaml:"password" env:"EMAIL_PASS2" env-required:"true"`
	SMTPHost   string `yaml:"smtp_host" env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	SMTPPort   int    `yaml:"smtp_port" env:"SMTP_PORT" env-default:"587"`
	SenderName string `yaml:"sender_name" env:"SENDER_NAME" env-default:"Chirag Thathi"`
}

type Recaptcha struct {
	Secret       string        `yaml:"secret" env:"KEY" env-required:"true"`
	VerifyURL    string        `yaml:"verify_url" env:"RECAPTCHA_VERIFY_URL"`
	VerifyOnSend bool          `yaml:"verify_on_send" env:"RECAPTCHA_VERIFY_ON_SEND" env-default:"false"`
	Timeout      time.Duration `yaml:"timeout" env:"RECAPTCHA_TIMEOUT" env-default:"10s"`
}

// ListenAddress is the host:port the HTTP server binds to.
func (s HTTPServer) ListenAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Load reads an optional .env file, then the YAML file named by CONFIG_PATH
// (if set), then the process environment. Environment values win.
func Load() (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("Failed to read config: " + err.Error())
	}

	return cfg
}
