package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Reservation modes selecting the price-resolution strategy.  In remote
// mode the external reservation RPC assigns wave and price; in local
// mode the service inserts into its own store and prices the booking
// from the currently resolved wave.
const (
	ModeRemote = "remote"
	ModeLocal  = "local"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Mode-specific fields are only required
// when the matching reservation mode is selected.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	ReservationMode string        // "remote" or "local"
	SupabaseURL     string        // base URL of the remote reservation endpoint (remote mode)
	SupabaseKey     string        // API key sent with reservation calls (remote mode)
	ReserveTimeout  time.Duration // hard timeout on the reservation call
	DBUser          string        // database username (local mode)
	DBPass          string        // database password (optional)
	DBHost          string        // database host address (local mode)
	DBPort          string        // database port number (local mode)
	DBName          string        // database name (local mode)
	JWTSecret       string        // secret used to sign organizer JWTs
	AccessTTLMin    int           // organizer access token TTL in minutes
	AdminEmail      string        // organizer login email
	AdminPassHash   string        // bcrypt hash of the organizer password
	WaveRefresh     time.Duration // period of the wave re-resolution monitor
	WavesFile       string        // optional JSON file overriding the built-in wave table
	TicketIDPrefix  string        // prefix for locally issued ticket ids ("RH")
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing
// values cause the program to exit with a fatal log message.  The
// reservation mode decides which collaborator settings are required.
func Load() Config {
	cfg := Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		ReservationMode: getenv("RESERVATION_MODE", ModeRemote),
		ReserveTimeout:  getdur("RESERVE_TIMEOUT", 10*time.Second),
		JWTSecret:       must("JWT_SECRET"),
		AccessTTLMin:    getint("ACCESS_TOKEN_TTL_MIN", 30),
		AdminEmail:      must("ADMIN_EMAIL"),
		AdminPassHash:   must("ADMIN_PASSWORD_HASH"),
		WaveRefresh:     getdur("WAVE_REFRESH_INTERVAL", time.Second),
		WavesFile:       os.Getenv("WAVES_FILE"),
		TicketIDPrefix:  getenv("TICKET_ID_PREFIX", "RH"),
	}
	switch cfg.ReservationMode {
	case ModeRemote:
		cfg.SupabaseURL = must("SUPABASE_URL")
		cfg.SupabaseKey = must("SUPABASE_ANON_KEY")
	case ModeLocal:
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	default:
		log.Fatalf("unknown RESERVATION_MODE: %q (want %q or %q)", cfg.ReservationMode, ModeRemote, ModeLocal)
	}
	return cfg
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

// getenv returns the value of an optional variable or the default.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getint parses an optional integer variable.  Invalid values are fatal
// rather than silently defaulted so misconfiguration surfaces at boot.
func getint(key string, def int) int {
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

// getdur parses an optional duration variable ("10s", "500ms").
func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, v)
	}
	return d
}
