package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/blobkeeper/internal/flagx"
)

// KnownFlags lists every flag name the CLI understands, including -c/-config.
// Anything else in the argument list is treated as a command word.
var KnownFlags = []string{
	"c", "config",
	"b", "backend", "k", "store-key", "f", "key-field", "x", "codec",
	"passphrase", "salt",
	"sqlite", "postgres", "bolt", "bolt-bucket",
	"redis-addr", "redis-password", "redis-db", "redis-prefix",
	"s3-region", "s3-user", "s3-password", "s3-bucket", "s3-endpoint", "s3-prefix",
	"log-level",
}

// parseFlags populates cfg from the flags in args. Only flags listed in
// KnownFlags are considered, so command words and their arguments pass
// through untouched.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("blobkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "storage backend")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (short)")
	fs.StringVar(&cfg.StoreKey, "store-key", cfg.StoreKey, "slot holding the collection")
	fs.StringVar(&cfg.StoreKey, "k", cfg.StoreKey, "slot holding the collection (short)")
	fs.StringVar(&cfg.KeyField, "key-field", cfg.KeyField, "document key field")
	fs.StringVar(&cfg.KeyField, "f", cfg.KeyField, "document key field (short)")
	fs.StringVar(&cfg.Codec, "codec", cfg.Codec, "collection codec")
	fs.StringVar(&cfg.Codec, "x", cfg.Codec, "collection codec (short)")
	fs.StringVar(&cfg.Passphrase, "passphrase", cfg.Passphrase, "sealed codec passphrase")
	fs.StringVar(&cfg.Salt, "salt", cfg.Salt, "sealed codec salt")

	fs.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "SQLite database path")
	fs.StringVar(&cfg.PostgresDSN, "postgres", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.BoltPath, "bolt", cfg.BoltPath, "bbolt file path")
	fs.StringVar(&cfg.BoltBucket, "bolt-bucket", cfg.BoltBucket, "bbolt bucket")

	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.RedisPassword, "redis-password", cfg.RedisPassword, "Redis password")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database number")
	fs.StringVar(&cfg.RedisPrefix, "redis-prefix", cfg.RedisPrefix, "Redis key prefix")

	fs.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3AccessKey, "s3-user", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "s3-password", cfg.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3BaseEndpoint, "s3-endpoint", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3Prefix, "s3-prefix", cfg.S3Prefix, "S3 object key prefix")

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	// -c/-config were consumed by parseJson; register them so Parse accepts them.
	var ignored string
	fs.StringVar(&ignored, "config", "", "path to config file")
	fs.StringVar(&ignored, "c", "", "path to config file (short)")

	return fs.Parse(flagx.FilterArgs(args, KnownFlags))
}
