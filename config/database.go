package config

// MongoConfig contains document store configuration.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string `env:"URI" envDefault:"mongodb://localhost:27017"`

	// Database is the database holding the users, jobs, and applications collections.
	Database string `env:"DATABASE" envDefault:"jobboard"`

	// EnsureIndexesOnStart controls whether the application creates the
	// username unique index during startup.
	EnsureIndexesOnStart bool `env:"ENSURE_INDEXES_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration for the session store.
type RedisConfig struct {
	// Enabled selects the Redis session store. When false, sessions are held
	// in process memory and do not survive a restart.
	Enabled  bool   `env:"ENABLED"  envDefault:"false"`
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
