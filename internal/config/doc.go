// Package config loads runtime configuration for the blobkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-b, -backend string     memory | sqlite | postgres | bolt | redis | s3
//	-k, -store-key string   slot holding the collection
//	-f, -key-field string   document field used as the record key
//	-x, -codec string       json | cbor | sealed
//	-passphrase string      passphrase for the sealed codec
//	-salt string            key-derivation salt for the sealed codec
//	-sqlite string          SQLite database path
//	-postgres string        PostgreSQL DSN
//	-bolt string            bbolt file path
//	-bolt-bucket string     bbolt bucket name
//	-redis-addr string      host:port of Redis
//	-redis-password string
//	-redis-db int
//	-redis-prefix string
//	-s3-region, -s3-user, -s3-password, -s3-bucket, -s3-prefix
//	-s3-endpoint string     custom endpoint such as a local MinIO; empty means AWS
//	-log-level string       debug | info | warn | error
//
// # JSON schema
//
// Keys mirror the long flag names with underscores:
//
//	{
//	  "backend": "sqlite",
//	  "store_key": "notes",
//	  "sqlite": "blobkeeper.db",
//	  "log_level": "debug"
//	}
//
// Fields absent from the JSON file keep their default values.
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
