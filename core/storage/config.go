package storage

// Config holds configuration for the object storage used to archive raw
// upstream payloads. Archiving is disabled when Endpoint is empty.
type Config struct {
	// Endpoint is the storage endpoint (host:port), without scheme.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the storage access key.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the storage secret key.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Bucket is the bucket snapshots are written to.
	Bucket string `mapstructure:"bucket" default:"boardsync"`
	// Region is the storage region.
	Region string `mapstructure:"region" default:""`
	// UseSSL enables TLS for the storage connection.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// TimeoutSeconds is the per-operation timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Enabled reports whether snapshot archiving is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}
