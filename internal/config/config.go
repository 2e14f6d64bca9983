package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Limiter    Limiter
	Auth       AuthConfig
	SMTP       SMTPConfig
	Email      EmailConfig
	Line       LineConfig
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"3000"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"15s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	StaticDir      string        `env:"HTTP_STATIC_DIR" env-default:"./public"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT                     JWTConfig
	VerificationCodeLength  int           `env:"AUTH_VERIFICATION_CODE_LENGTH" env-default:"6"`
	VerificationCodeTTL     time.Duration `env:"AUTH_VERIFICATION_CODE_TTL" env-default:"10m"`
	VerificationMaxAttempts int           `env:"AUTH_VERIFICATION_MAX_ATTEMPTS" env-default:"5"`
}

type JWTConfig struct {
	TokenTTL   time.Duration `env:"JWT_TOKEN_TTL" env-default:"24h"`
	SigningKey string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

type SMTPConfig struct {
	Host        string        `env:"SMTP_HOST" env-required:"true"`
	Port        int           `env:"SMTP_PORT" env-required:"true"`
	From        string        `env:"SMTP_FROM" env-required:"true"`
	Pass        string        `env:"SMTP_PASS" env-required:"true"`
	SendTimeout time.Duration `env:"SMTP_SEND_TIMEOUT" env-default:"10s"`
}

type EmailConfig struct {
	Templates EmailTemplates
}

type EmailTemplates struct {
	Verification string `env:"EMAIL_TEMPLATE_VERIFICATION" env-default:"templates/verification.html"`
	DebateResult string `env:"EMAIL_TEMPLATE_DEBATE_RESULT" env-default:"templates/debate_result.html"`
}

type LineConfig struct {
	ChannelSecret      string `env:"LINE_CHANNEL_SECRET" env-required:"true"`
	ChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN" env-required:"true"`
	DebateURL          string `env:"LINE_DEBATE_URL" env-default:"https://debate-hall.example.com/debate"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
