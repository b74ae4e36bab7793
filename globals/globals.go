package globals

import "os"

var JwtSecret = []byte(jwtSecretFromEnv())

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "dev_only_secret"
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RoleKey ContextKey = "role"
