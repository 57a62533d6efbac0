package app

import (
	"time"

	"github.com/zeon9405/unikraft/internal/platform/envutil"
)

type Config struct {
	Port           string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	SeedData       bool
}

func LoadConfig() Config {
	return Config{
		Port:           envutil.Str("PORT", "8080"),
		JWTSecretKey:   envutil.Str("JWT_SECRET_KEY", "defaultsecret"),
		AccessTokenTTL: envutil.Seconds("ACCESS_TOKEN_TTL", 3600),
		SeedData:       envutil.Bool("SEED_DATA", true),
	}
}
