// Package neograph analyzes an Ethereum-style transaction graph stored in Neo4j
// (accounts, contracts, external addresses, blocks, Transaction and Mined edges)
// and converts raw query results into a node-link graph ready for visualization.
package neograph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// DBRunner defines the interface for a generic query executor.
// It abstracts the execution of a Cypher query, allowing for different implementations
// or mocking in tests.
type DBRunner interface {
	// Run executes a given Cypher query with parameters and returns a fully-buffered result.
	Run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error)
}

// Config holds the connection settings of a Neo4jExecutor.
type Config struct {
	URI         string
	Username    string
	Password    string
	Database    string
	Timeout     time.Duration
	MaxPoolSize int
}

// Neo4jExecutor is a concrete implementation of the DBRunner interface that uses the
// official Neo4j Go driver. It owns the driver instance and the target database name.
type Neo4jExecutor struct {
	Driver neo4j.DriverWithContext
	DBName string
}

// NewNeo4jExecutor creates a Neo4jExecutor without verifying connectivity.
//
// Returns:
//
//	A pointer to the newly created Neo4jExecutor or an error wrapping ErrConnection
//	if the driver cannot be created (e.g., a malformed URI).
func NewNeo4jExecutor(cfg Config) (*Neo4jExecutor, error) {
	auth := neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		if cfg.MaxPoolSize > 0 {
			c.MaxConnectionPoolSize = cfg.MaxPoolSize
		}
		if cfg.Timeout > 0 {
			c.SocketConnectTimeout = cfg.Timeout
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: could not create Neo4j driver: %w", ErrConnection, err)
	}
	return &Neo4jExecutor{Driver: driver, DBName: cfg.Database}, nil
}

// Connect creates the driver and verifies that the database is reachable.
// A driver that fails verification is closed before returning.
func Connect(ctx context.Context, cfg Config) (*Neo4jExecutor, error) {
	e, err := NewNeo4jExecutor(cfg)
	if err != nil {
		return nil, err
	}

	vctx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		vctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	if err := e.Verify(vctx); err != nil {
		_ = e.Close(ctx)
		return nil, fmt.Errorf("%w: verify connectivity: %w", ErrConnection, err)
	}
	return e, nil
}

// WithExecutor connects, calls fn with the executor and always releases the driver.
func WithExecutor(ctx context.Context, cfg Config, fn func(*Neo4jExecutor) error) error {
	e, err := Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close(ctx) }()
	return fn(e)
}

// Verify checks the connectivity to the Neo4j database.
func (e *Neo4jExecutor) Verify(ctx context.Context) error {
	return e.Driver.VerifyConnectivity(ctx)
}

// Close releases the driver. Calling Close more than once is a no-op.
func (e *Neo4jExecutor) Close(ctx context.Context) error {
	if e == nil || e.Driver == nil {
		return nil
	}
	err := e.Driver.Close(ctx)
	e.Driver = nil
	return err
}

// Run executes a Cypher query using ExecuteQuery, which handles session and
// transaction management. Every query of this package is read-only, so it is
// routed to readers.
//
// Returns:
//
//	An EagerResult containing all buffered records from the query, or an error
//	wrapping ErrQuery if the execution fails.
func (e *Neo4jExecutor) Run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		e.Driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(e.DBName),
		neo4j.ExecuteQueryWithReadersRouting(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}

	return result, nil
}
