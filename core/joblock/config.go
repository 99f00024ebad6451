package joblock

// Config holds the Redis connection for the cross-instance guard. An empty
// Addr selects the process-local guard instead.
type Config struct {
	// Addr is the Redis host:port, empty to disable.
	Addr string `mapstructure:"addr" default:""`
	// Password is the Redis auth password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
}

// Enabled reports whether a Redis-backed guard is configured.
func (c Config) Enabled() bool {
	return c.Addr != ""
}
