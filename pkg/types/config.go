package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Account service. When AccountServiceURL is unset the server falls back
	// to the embedded Postgres-backed store (DatabaseURL required).
	AccountServiceURL   string `envconfig:"ACCOUNT_SERVICE_URL"`
	AccountServiceToken string `envconfig:"ACCOUNT_SERVICE_TOKEN"`
	DatabaseURL         string `envconfig:"DATABASE_URL"`

	// Receipt image storage
	S3BucketName string `envconfig:"S3_BUCKET_NAME" default:"fueltrack-receipts"`
	S3Region     string `envconfig:"S3_REGION" default:"us-east-1"`
	S3KeyPrefix  string `envconfig:"S3_KEY_PREFIX" default:"receipts/"`

	// Key for the user-id path token. Rotating it breaks existing receipt URLs.
	CodexSecret string `envconfig:"CODEX_SECRET"`

	// Auth Configuration
	IssuerURL string `envconfig:"ISSUER_URL"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
}
