package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores dispatcher service settings.
type Config struct {
	Port      int
	DB        DB
	Redis     Redis
	Kafka     Kafka
	Dispatch  Dispatch
	Speed     Speed
	Fare      Fare
	RateLimit RateLimit
	Pprof     Pprof
	MapsKey   string
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a PostgreSQL connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Redis stores notification transport settings.
type Redis struct {
	Addr string
}

// Kafka stores order-event consumer settings. Empty brokers disable the consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Dispatch stores the matching engine tunables.
type Dispatch struct {
	BaseRadiusKm  float64
	RadiusStepKm  float64
	MaxRadiusKm   float64
	FanOut        int
	OfferTTL      time.Duration
	SweepInterval time.Duration
}

// Speed stores the average speed assumption (km/h) per transport type used
// for ETA estimates. Default covers unknown transport types.
type Speed struct {
	Foot    float64
	Scooter float64
	Car     float64
	Default float64
}

// Fare stores the static fare rates (minor units) used by the fallback quoter.
type Fare struct {
	Base   int64
	PerKm  int64
	PerMin int64
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the debug listener settings.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      envInt("PORT", DefaultPort()),
		DB:        loadDB(),
		Redis:     Redis{Addr: envStr("REDIS_ADDR", DefaultRedis().Addr)},
		Kafka:     loadKafka(),
		Dispatch:  loadDispatch(),
		Speed:     loadSpeed(),
		Fare:      loadFare(),
		RateLimit: loadRateLimit(),
		Pprof: Pprof{
			Addr: envStr("PPROF_ADDR", DefaultPprof().Addr),
			User: envStr("PPROF_USER", ""),
			Pass: envStr("PPROF_PASS", ""),
		},
		MapsKey: envStr("MAPS_API_KEY", ""),
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	d := c.Dispatch
	if d.BaseRadiusKm <= 0 || d.RadiusStepKm <= 0 || d.MaxRadiusKm < d.BaseRadiusKm {
		return fmt.Errorf("invalid dispatch radii: base=%v step=%v max=%v",
			d.BaseRadiusKm, d.RadiusStepKm, d.MaxRadiusKm)
	}
	if d.FanOut <= 0 {
		return fmt.Errorf("invalid dispatch fan-out: %d", d.FanOut)
	}
	if d.OfferTTL <= 0 || d.SweepInterval <= 0 {
		return fmt.Errorf("invalid dispatch intervals: ttl=%v sweep=%v", d.OfferTTL, d.SweepInterval)
	}
	if c.Speed.Default <= 0 {
		return fmt.Errorf("invalid default speed: %v", c.Speed.Default)
	}
	return nil
}

func loadDB() DB {
	def := DefaultDB()
	return DB{
		Host: envStr("POSTGRES_HOST", def.Host),
		Port: envStr("POSTGRES_PORT", def.Port),
		User: envStr("POSTGRES_USER", def.User),
		Pass: envStr("POSTGRES_PASSWORD", def.Pass),
		Name: envStr("POSTGRES_DB", def.Name),
	}
}

func loadKafka() Kafka {
	var brokers []string
	if v := envStr("KAFKA_BROKERS", ""); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}
	return Kafka{
		Brokers: brokers,
		Topic:   envStr("KAFKA_ORDERS_TOPIC", DefaultKafka().Topic),
		GroupID: envStr("KAFKA_GROUP_ID", DefaultKafka().GroupID),
	}
}

func loadDispatch() Dispatch {
	def := DefaultDispatch()
	return Dispatch{
		BaseRadiusKm:  envFloat("DISPATCH_BASE_RADIUS_KM", def.BaseRadiusKm),
		RadiusStepKm:  envFloat("DISPATCH_RADIUS_STEP_KM", def.RadiusStepKm),
		MaxRadiusKm:   envFloat("DISPATCH_MAX_RADIUS_KM", def.MaxRadiusKm),
		FanOut:        envInt("DISPATCH_FAN_OUT", def.FanOut),
		OfferTTL:      envDuration("DISPATCH_OFFER_TTL", def.OfferTTL),
		SweepInterval: envDuration("DISPATCH_SWEEP_INTERVAL", def.SweepInterval),
	}
}

func loadSpeed() Speed {
	def := DefaultSpeed()
	return Speed{
		Foot:    envFloat("SPEED_FOOT_KMH", def.Foot),
		Scooter: envFloat("SPEED_SCOOTER_KMH", def.Scooter),
		Car:     envFloat("SPEED_CAR_KMH", def.Car),
		Default: envFloat("SPEED_DEFAULT_KMH", def.Default),
	}
}

func loadFare() Fare {
	def := DefaultFare()
	return Fare{
		Base:   envInt64("FARE_BASE", def.Base),
		PerKm:  envInt64("FARE_PER_KM", def.PerKm),
		PerMin: envInt64("FARE_PER_MIN", def.PerMin),
	}
}

func loadRateLimit() RateLimit {
	def := DefaultRateLimit()
	return RateLimit{
		Enabled:    envBool("RATE_LIMIT_ENABLED", def.Enabled),
		Rate:       envFloat("RATE_LIMIT_RATE", def.Rate),
		Burst:      envInt("RATE_LIMIT_BURST", def.Burst),
		TTL:        envDuration("RATE_LIMIT_TTL", def.TTL),
		MaxBuckets: envInt("RATE_LIMIT_MAX_BUCKETS", def.MaxBuckets),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
