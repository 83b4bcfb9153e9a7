package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "deliverino",
}

var defaultRedis = Redis{
	Addr: "127.0.0.1:6379",
}

var defaultKafka = Kafka{
	Topic:   "orders.events",
	GroupID: "deliverino-dispatcher",
}

var defaultDispatch = Dispatch{
	BaseRadiusKm:  3,
	RadiusStepKm:  2,
	MaxRadiusKm:   15,
	FanOut:        3,
	OfferTTL:      45 * time.Second,
	SweepInterval: 10 * time.Second,
}

var defaultSpeed = Speed{
	Foot:    5,
	Scooter: 25,
	Car:     40,
	Default: 20,
}

var defaultFare = Fare{
	Base:   250,
	PerKm:  80,
	PerMin: 15,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Addr: "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultRedis returns the default redis settings.
func DefaultRedis() Redis { return defaultRedis }

// DefaultKafka returns the default kafka settings.
func DefaultKafka() Kafka { return defaultKafka }

// DefaultDispatch returns the default dispatch engine settings.
func DefaultDispatch() Dispatch { return defaultDispatch }

// DefaultSpeed returns the default per-transport speed table.
func DefaultSpeed() Speed { return defaultSpeed }

// DefaultFare returns the default static fare rates.
func DefaultFare() Fare { return defaultFare }

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }

// DefaultPprof returns the default pprof listener settings.
func DefaultPprof() Pprof { return defaultPprof }
