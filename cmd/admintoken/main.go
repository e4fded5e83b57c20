// Command admintoken mints an operator JWT for the approval endpoints.
//
//	GLD_JWT_SECRET=... go run ./cmd/admintoken -sub ops@example.com
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gold-ledger/config"
	"gold-ledger/internal/core/ports"
	"gold-ledger/internal/service"
)

func main() {
	subject := flag.String("sub", "", "operator identity recorded in audit logs")
	role := flag.String("role", ports.RoleOperator, "token role")
	expiry := flag.Duration("expiry", 0, "token lifetime (default jwt.expiry)")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "-sub is required")
		os.Exit(2)
	}

	cfg, err := config.Load(os.Getenv("GLD_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret is required (GLD_JWT_SECRET)")
		os.Exit(1)
	}

	ttl := cfg.JWT.Expiry
	if *expiry > 0 {
		ttl = *expiry
	}

	token, expiresAt, err := service.NewJWTTokenService(cfg.JWT.Secret, ttl, cfg.JWT.Issuer).Generate(*subject, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", expiresAt.UTC().Format(time.RFC3339))
}
