// Command token mints an admin API token signed with JWT_SECRET.
//
//	go run ./cmd/token -email desk@futsal.local -role staff -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SJ-Slasher/FMS/internal/auth"
	"github.com/SJ-Slasher/FMS/internal/config"
)

func main() {
	staffID := flag.Int("id", 1, "staff id")
	email := flag.String("email", "", "staff email")
	role := flag.String("role", auth.RoleAdmin, "role: admin or staff")
	ttl := flag.Duration("ttl", auth.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *email == "" {
		fmt.Fprintln(os.Stderr, "-email is required")
		os.Exit(2)
	}

	token, err := auth.GenerateAccessToken(*staffID, *email, *role, cfg.JWTSecret, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
