package config

import (
	"log"
	"os"
	"strconv"

	"github.com/beka-birhanu/vinom-paradox/game"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string  // Host IP for the server
	RESTPort        int     // Port for the REST API
	GinMode         string  // Mode for the Gin framework (e.g., release, debug, test)
	TickRate        int     // Simulation ticks per second
	Seed            int64   // Seed for wanderer randomness
	RecordingWindow float64 // Seconds of player movement recorded per run
	PowerDuration   float64 // Seconds Power-Mode lasts
	SpawnBaseGap    float64 // Seconds between the first and second clone
	SpawnMinGap     float64 // Floor for the gap between clones
	SpawnGapDecay   float64 // Seconds each gap shrinks by
	RedisAddr       string  // Address of the Redis leaderboard; empty keeps scores in memory
	RedisPassword   string  // Password for Redis
	ScoreKey        string  // Sorted-set key of the leaderboard
	MongoURI        string  // MongoDB connection string; empty disables run history
	DBName          string  // Name of the database
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	tuning := game.DefaultTuning()
	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		TickRate:        getEnvAsIntWithDefault("TICK_RATE", 60),
		Seed:            int64(getEnvAsIntWithDefault("RNG_SEED", 1)),
		RecordingWindow: getEnvAsFloatWithDefault("RECORDING_WINDOW", tuning.RecordingWindow),
		PowerDuration:   getEnvAsFloatWithDefault("POWER_DURATION", tuning.PowerDuration),
		SpawnBaseGap:    getEnvAsFloatWithDefault("SPAWN_BASE_GAP", tuning.SpawnBaseGap),
		SpawnMinGap:     getEnvAsFloatWithDefault("SPAWN_MIN_GAP", tuning.SpawnMinGap),
		SpawnGapDecay:   getEnvAsFloatWithDefault("SPAWN_GAP_DECAY", tuning.SpawnGapDecay),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		ScoreKey:        getEnvWithDefault("SCORE_KEY", "paradox:highscores"),
		MongoURI:        getEnvWithDefault("MONGO_URI", ""),
		DBName:          getEnvWithDefault("DB_NAME", "paradox"),
	}
}

// Tuning returns the simulation tuning with the configured overrides applied.
func (c Config) Tuning() game.Tuning {
	t := game.DefaultTuning()
	t.RecordingWindow = c.RecordingWindow
	t.PowerDuration = c.PowerDuration
	t.SpawnBaseGap = c.SpawnBaseGap
	t.SpawnMinGap = c.SpawnMinGap
	t.SpawnGapDecay = c.SpawnGapDecay
	return t
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
// It logs a fatal error if the value cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves a float environment variable or returns a default value if not set.
// It logs a fatal error if the value cannot be parsed.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
