package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	NSQ    NSQConfig
	JWT    JWTConfig
	OTP    OTPConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig contains MongoDB connection configuration
type MongoConfig struct {
	URI      string
	Database string
	Timeout  int // connect timeout in seconds
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address    string
	MailTopic  string
	MailSender string
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret string
	Issuer string
	// Session lifetimes in hours: Expiration for normal logins,
	// RememberExpiration when the caller asks to stay signed in.
	Expiration         int
	RememberExpiration int
}

// OTPConfig contains password reset OTP configuration
type OTPConfig struct {
	Length     int // number of digits, deployments have used 4 and 6
	TTLMinutes int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
