// Command issue-token signs an access token with the configured secret for
// local development and smoke tests. Production tokens come from the
// identity provider.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/auth"
	"github.com/noah-vh/airbour-web-sub001/internal/config"
)

func main() {
	orgFlag := flag.String("org", os.Getenv("ORG_ID"), "organisation id (default $ORG_ID)")
	userFlag := flag.String("user", "", "user id (default: random)")
	role := flag.String("role", "", "role claim, e.g. admin")
	flag.Parse()

	orgID, err := uuid.Parse(*orgFlag)
	if err != nil {
		log.Fatalf("invalid -org %q: %v", *orgFlag, err)
	}
	userID := uuid.New()
	if *userFlag != "" {
		if userID, err = uuid.Parse(*userFlag); err != nil {
			log.Fatalf("invalid -user %q: %v", *userFlag, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	jwtm := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	token, err := jwtm.GenerateAccessToken(auth.Identity{UserID: userID, OrgID: orgID, Role: *role})
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
