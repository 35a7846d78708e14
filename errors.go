package neograph

import "errors"

var (
	// ErrNotFound is returned by lookups when no record matching the criteria exists.
	ErrNotFound = errors.New("record not found")

	// ErrConnection wraps any failure to establish the database driver.
	ErrConnection = errors.New("neo4j connection failed")

	// ErrQuery wraps any failure reported by the database while executing a query.
	ErrQuery = errors.New("neo4j query failed")

	// ErrInvalidAddressList is returned when a batch address list cannot be decoded.
	ErrInvalidAddressList = errors.New("invalid address list")

	// ErrMalformedRecord is returned when a result record is not a (node, node, relationship) tuple.
	ErrMalformedRecord = errors.New("malformed graph record")

	// ErrDanglingLink is returned when a relationship references a node absent from the result.
	ErrDanglingLink = errors.New("link endpoint not in node set")

	// ErrUnknownCategory is returned for centrality categories without a query.
	ErrUnknownCategory = errors.New("unknown account category")
)
