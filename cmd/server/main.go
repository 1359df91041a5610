package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lumie-registry/internal/app"
)

const banner = `
  _                    _
 | |   _   _ _ __ ___ (_) ___
 | |  | | | | '_ ` + "`" + ` _ \| |/ _ \
 | |__| |_| | | | | | | |  __/
 |_____\__,_|_| |_| |_|_|\___|
`

func main() {
	configPath := flag.String("config", "", "path to config file")
	mode := flag.String("mode", app.ModeAll, "run mode: all | api | worker")
	flag.Parse()

	fmt.Print(banner)
	warnWeakSecret()

	if err := app.Run(app.Options{ConfigPath: *configPath, Mode: *mode}); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func warnWeakSecret() {
	secret := strings.TrimSpace(os.Getenv("LUMIE_JWT_SECRET"))
	if secret == "" || isWeakSecret(secret) {
		fmt.Fprintln(os.Stderr, "warning: LUMIE_JWT_SECRET is empty or weak, set a strong secret in production")
	}
}

func isWeakSecret(secret string) bool {
	if len(secret) < 16 {
		return true
	}
	switch strings.ToLower(secret) {
	case "secret", "change-me", "changeme", "password", "lumie":
		return true
	}
	return false
}
