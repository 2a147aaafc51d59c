package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Secrets (the shared API key and the token signing
// key) are read once here and passed down explicitly; nothing else in the
// application touches the environment for them.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	DBUser          string // database username
	DBPass          string // database password (optional)
	DBHost          string // database host address
	DBPort          string // database port number
	DBName          string // database name
	DBMaxConns      int    // upper bound on open database connections
	DBConnMaxAgeMin int    // minutes before a pooled connection is recycled
	APIKey          string // shared secret expected in the apiKey header
	JWTSecret       string // secret used to sign auth tokens
	TokenTTLSeconds int    // auth token time-to-live in seconds
	BcryptCost      int    // bcrypt cost for password hashing

	// AuthTokenRequireAPIKey puts POST /authToken behind the API-key gate.
	// The historical behavior leaves it open, so the default is false.
	AuthTokenRequireAPIKey bool
	// VerifyExpiryOnLookup rejects stored tokens whose embedded expiry has
	// passed when resolving a user via POST /authToken. Historically tokens
	// stayed valid as lookup keys until overwritten, so the default is false.
	VerifyExpiryOnLookup bool
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:                    must("APP_ENV"),
		Port:                   must("APP_PORT"),
		DBUser:                 must("DB_USER"),
		DBPass:                 os.Getenv("DB_PASS"), // empty allowed
		DBHost:                 must("DB_HOST"),
		DBPort:                 must("DB_PORT"),
		DBName:                 must("DB_NAME"),
		DBMaxConns:             optInt("DB_MAX_CONNS", 10),
		DBConnMaxAgeMin:        optInt("DB_CONN_MAX_AGE_MIN", 15),
		APIKey:                 must("API_KEY"),
		JWTSecret:              must("JWT_SECRET"),
		TokenTTLSeconds:        optInt("TOKEN_TTL_SECONDS", 86400),
		BcryptCost:             optInt("BCRYPT_COST", 8),
		AuthTokenRequireAPIKey: optBool("AUTH_TOKEN_REQUIRE_API_KEY", false),
		VerifyExpiryOnLookup:   optBool("VERIFY_EXPIRY_ON_LOOKUP", false),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// optInt reads an optional integer variable, falling back to def when the
// variable is unset. An unparsable value is a configuration mistake and
// aborts startup the same way a missing required variable does.
func optInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func optBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}
