package neograph

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"

	"github.com/saulfrancisco-ruizacevedo/go-neograph/models"
)

// FindAccount retrieves a single account node by its address.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - address: The account address; it is matched in lower case.
//
// Returns:
//
//	The normalized account node, ErrNotFound if no account has that address, or
//	another error if the query fails or the address is not unique.
func (a *Analyzer) FindAccount(ctx context.Context, address string) (*models.Node, error) {
	// 1. Build the query using gocypher.
	props := map[string]interface{}{"address": strings.ToLower(address)}
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("a", models.LabelAccount).WithProperties(props)).
		Return("a").
		Build()
	if err != nil {
		return nil, fmt.Errorf("could not build query: %w", err)
	}

	// 2. Execute the query using the runner.
	eagerResult, err := a.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}

	// 3. Process the result records.
	if len(eagerResult.Records) == 0 {
		return nil, ErrNotFound
	}
	if len(eagerResult.Records) > 1 {
		// Addresses are unique per account; more rows means the data is inconsistent.
		return nil, fmt.Errorf("expected 1 record but found %d", len(eagerResult.Records))
	}

	value, ok := eagerResult.Records[0].Get("a")
	if !ok {
		return nil, fmt.Errorf("could not find return value 'a' in query result")
	}
	node, ok := value.(neo4j.Node)
	if !ok {
		return nil, fmt.Errorf("%w: return value 'a' is %T, not a node", ErrMalformedRecord, value)
	}

	return NormalizeNode(node), nil
}
