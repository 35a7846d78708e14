// Package config declares the settings shared by every neograph command. Values come
// from flags, then environment variables, then an optional .env file.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	neograph "github.com/saulfrancisco-ruizacevedo/go-neograph"
)

// Neo4j holds the connection settings of the graph database.
type Neo4j struct {
	URI         string        `name:"neo4j-uri" env:"NEO4J_URI" default:"bolt://localhost:7687" help:"Neo4j connection URI."`
	User        string        `name:"neo4j-user" env:"NEO4J_USER" default:"neo4j" help:"Neo4j user name."`
	Password    string        `name:"neo4j-password" env:"NEO4J_PASSWORD" help:"Neo4j password."`
	Database    string        `name:"neo4j-database" env:"NEO4J_DATABASE" help:"Target database; empty selects the server default."`
	Timeout     time.Duration `name:"neo4j-timeout" env:"NEO4J_TIMEOUT" default:"10s" help:"Connect and verification timeout."`
	MaxPoolSize int           `name:"neo4j-max-pool-size" env:"NEO4J_MAX_POOL_SIZE" default:"50" help:"Maximum number of pooled connections."`
}

// Executor converts the flags into the executor configuration.
func (n Neo4j) Executor() neograph.Config {
	return neograph.Config{
		URI:         n.URI,
		Username:    n.User,
		Password:    n.Password,
		Database:    n.Database,
		Timeout:     n.Timeout,
		MaxPoolSize: n.MaxPoolSize,
	}
}

// Config is embedded into the command line so that every command shares it.
type Config struct {
	Neo4j   Neo4j  `embed:""`
	LogMode string `name:"log-mode" env:"LOG_MODE" default:"dev" enum:"dev,prod" help:"Logger preset (dev or prod)."`
}

// LoadEnv loads variables from the given .env files (".env" when none are given)
// without overriding variables that are already set. It reports whether a file was read.
func LoadEnv(files ...string) bool {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return false
	}
	return godotenv.Load(existing...) == nil
}
