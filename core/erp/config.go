package erp

// Config holds configuration for the upstream ERP connection.
type Config struct {
	// BaseURL is the ERP API base URL.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:9080"`
	// Username is the technical account used to obtain a bearer token.
	Username string `mapstructure:"username" default:""`
	// Password is the technical account password.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
