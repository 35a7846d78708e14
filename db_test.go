package neograph

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNeo4jExecutor_BadURI(t *testing.T) {
	e, err := NewNeo4jExecutor(Config{URI: "ftp://localhost:7687", Username: "neo4j"})

	assert.ErrorIs(t, err, ErrConnection)
	assert.Nil(t, e)
}

func TestConnect_Unreachable(t *testing.T) {
	called := false
	err := WithExecutor(context.Background(), Config{
		URI:      "bolt://127.0.0.1:1",
		Username: "neo4j",
		Timeout:  200 * time.Millisecond,
	}, func(*Neo4jExecutor) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrConnection)
	assert.False(t, called)
}

func TestNeo4jExecutor_CloseIsIdempotent(t *testing.T) {
	e, err := NewNeo4jExecutor(Config{URI: "bolt://localhost:7687", Username: "neo4j"})
	require.NoError(t, err)

	assert.NoError(t, e.Close(context.Background()))
	assert.NoError(t, e.Close(context.Background()))

	var nilExecutor *Neo4jExecutor
	assert.NoError(t, nilExecutor.Close(context.Background()))
}
