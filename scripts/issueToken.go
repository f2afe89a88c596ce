package main

import (
	"errors"
	"flag"
	"fmt"
	"fomo/config"
	"fomo/middleware"
	"log"
	"time"
)

var errNoSecret = errors.New("JWT_SECRET_KEY is not set")

// Mints an admin token for local testing against the draft API.
//
//	go run ./scripts -user 1 -name "Local Admin" -ttl 8h
func main() {
	userID := flag.Uint("user", 1, "admin user id")
	name := flag.String("name", "Local Admin", "display name")
	email := flag.String("email", "admin@localhost", "email claim")
	role := flag.String("role", middleware.RoleAdmin, "role claim")
	ttl := flag.Duration("ttl", 8*time.Hour, "token lifetime")
	flag.Parse()

	config.LoadConfig()
	token, err := issueToken(config.AppConfig, *userID, *name, *role, *email, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}

// issueToken refuses the built-in fallback secret; a token signed with it
// would only work against an unconfigured server.
func issueToken(cfg *config.Config, userID uint, name, role, email string, ttl time.Duration) (string, error) {
	if cfg.JWTKey == "" || cfg.JWTKey == config.DefaultJWTKey {
		return "", errNoSecret
	}
	return middleware.GenerateJWT(cfg.JWTKey, userID, name, role, email, ttl)
}
