package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(signingSecret())

func signingSecret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return "trotter_dev_secret" // override via SESSION_SECRET in production
}

// Context keys
type ContextKey string

const IdentityKey ContextKey = "identity"

var Ctx = context.Background()
