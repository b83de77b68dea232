package storage

// Config holds configuration for the object storage the server publishes
// documents to.
type Config struct {
	// Enabled turns on the storage preflight check.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the host of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" env:"STORAGE_ACCESS_KEY,AWS_ACCESS_KEY_ID" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" env:"STORAGE_SECRET_KEY,AWS_SECRET_ACCESS_KEY" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the bucket download links are generated for.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" env:"STORAGE_REGION,AWS_DEFAULT_REGION" default:"us-east-1"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
