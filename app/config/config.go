package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// CheckinPolicy holds the check-in tolerances. The original admin backend had
// these duplicated as literals across call sites; here they have one source.
type CheckinPolicy struct {
	EarlyWindow          time.Duration // check-in allowed this long before class start
	LateWindow           time.Duration // check-in allowed this long after class end
	GeofenceRadiusMeters float64
}

type Config struct {
	DB       *sql.DB
	Timezone *time.Location
	Checkin  CheckinPolicy
	AppPort  string
}

var AppConfig *Config

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Warning: invalid integer for %s, using default %d", key, def)
	}
	return def
}

// Init loads .env, the tenant timezone, the check-in policy and the database
// pool. It must run before anything touches the store.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	tz := getEnv("TENANT_TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: failed to load timezone %s, falling back to UTC-3: %v", tz, err)
		loc = time.FixedZone("BRT", -3*60*60)
	}

	AppConfig = &Config{
		DB:       openDB(),
		Timezone: loc,
		AppPort:  getEnv("APP_PORT", "8080"),
		Checkin: CheckinPolicy{
			EarlyWindow:          time.Duration(getEnvInt("CHECKIN_EARLY_MINUTES", 15)) * time.Minute,
			LateWindow:           time.Duration(getEnvInt("CHECKIN_LATE_MINUTES", 20)) * time.Minute,
			GeofenceRadiusMeters: float64(getEnvInt("GEOFENCE_RADIUS_METERS", 200)),
		},
	}

	log.Printf("Tenant timezone: %s | check-in window -%s/+%s | geofence %.0fm",
		loc, AppConfig.Checkin.EarlyWindow, AppConfig.Checkin.LateWindow,
		AppConfig.Checkin.GeofenceRadiusMeters)
}

func openDB() *sql.DB {
	psqlInfo := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=30",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "arenahub"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	log.Println("Database connected successfully")
	return db
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetTimezone() *time.Location {
	return AppConfig.Timezone
}

func GetCheckinPolicy() CheckinPolicy {
	return AppConfig.Checkin
}
