// Command session-token prints a session token for a user, for local
// development against the event types pages.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"calpages/internal/config"
	"calpages/internal/infrastructure/session"
)

func main() {
	userID := flag.Uint("user", 0, "user id to sign in as")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == 0 {
		fmt.Fprintln(os.Stderr, "usage: session-token -user <id> [-ttl 24h]")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	token, err := session.NewManager(cfg.SessionSecret, *ttl).Issue(*userID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%s=%s\n", session.CookieName, token)
}
