package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The signing secret and bcrypt cost are
// read once here and handed to the token codec and password hasher; no
// component reaches for globals after startup.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	MongoURI       string // MongoDB connection string
	DBName         string // MongoDB database name
	JWTSecret      string // secret used to sign session tokens
	BcryptCost     int    // bcrypt cost for password hashing
	FrontendOrigin string // single origin allowed by CORS, with credentials
	UploadDir      string // directory uploaded photos are written to
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           must("APP_PORT"),
		MongoURI:       must("MONGO_URI"),
		DBName:         must("MONGO_DB"),
		JWTSecret:      must("JWT_SECRET"),
		BcryptCost:     mustInt("BCRYPT_COST"),
		FrontendOrigin: must("FRONTEND_URL"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
