package neograph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"golang.org/x/sync/errgroup"

	"github.com/saulfrancisco-ruizacevedo/go-neograph/internal/logger"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/models"
)

const (
	// AccountLinkLimit bounds the neighborhood of a single-account graph.
	AccountLinkLimit = 300
	// BatchLinkLimit bounds the neighborhood of every account of a batch graph.
	BatchLinkLimit = 40
)

// neighborhoodQuery returns every relationship of an account together with both endpoints.
const neighborhoodQuery = `MATCH (accountOne:Account {address: $address})-[r]-(neighbors) ` +
	`RETURN accountOne, neighbors, r LIMIT $limit`

// Analyzer is the entry point of the package. It owns the query runner and turns
// account addresses into graphs and rankings.
type Analyzer struct {
	runner DBRunner
	log    *logger.Logger
}

// NewAnalyzer creates an Analyzer on top of runner. A nil log discards output.
func NewAnalyzer(runner DBRunner, log *logger.Logger) *Analyzer {
	if log == nil {
		log = logger.Nop()
	}
	return &Analyzer{runner: runner, log: log.With("component", "Analyzer")}
}

// GraphForAccount returns the neighborhood graph of a single account, limited to
// AccountLinkLimit relationships. The address is matched in lower case.
func (a *Analyzer) GraphForAccount(ctx context.Context, address string) (*models.Graph, error) {
	records, err := a.neighborhood(ctx, address, AccountLinkLimit)
	if err != nil {
		return nil, err
	}
	return ConvertRecords(records)
}

// GraphForAccounts decodes a JSON array of addresses and returns their combined graph.
func (a *Analyzer) GraphForAccounts(ctx context.Context, addressListJSON string) (*models.Graph, error) {
	addresses, err := decodeAddressList(addressListJSON)
	if err != nil {
		return nil, err
	}
	return a.GraphForAddresses(ctx, addresses)
}

// decodeAddressList accepts a JSON array of non-empty strings. A JSON null list and
// null or blank entries are rejected.
func decodeAddressList(addressListJSON string) ([]string, error) {
	var raw []*string
	if err := json.Unmarshal([]byte(addressListJSON), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddressList, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected an array, got null", ErrInvalidAddressList)
	}

	addresses := make([]string, 0, len(raw))
	for i, address := range raw {
		if address == nil || strings.TrimSpace(*address) == "" {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrInvalidAddressList, i)
		}
		addresses = append(addresses, *address)
	}
	return addresses, nil
}

// GraphForAddresses queries the neighborhood of every address concurrently, each
// limited to BatchLinkLimit relationships, and aggregates all records into one graph.
//
// The call waits for every query. If any of them fails, the first error is returned and
// no graph is produced; queries already in flight are not cancelled and their results
// are discarded. Records are concatenated in the order of addresses.
func (a *Analyzer) GraphForAddresses(ctx context.Context, addresses []string) (*models.Graph, error) {
	results := make([][]*neo4j.Record, len(addresses))

	var g errgroup.Group
	for i, address := range addresses {
		g.Go(func() error {
			records, err := a.neighborhood(ctx, address, BatchLinkLimit)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, records := range results {
		total += len(records)
	}
	combined := make([]*neo4j.Record, 0, total)
	for _, records := range results {
		combined = append(combined, records...)
	}

	a.log.Debug("batch graph queried", "accounts", len(addresses), "records", total)
	return ConvertRecords(combined)
}

func (a *Analyzer) neighborhood(ctx context.Context, address string, limit int) ([]*neo4j.Record, error) {
	address = strings.ToLower(address)
	result, err := a.runner.Run(ctx, neighborhoodQuery, map[string]interface{}{
		"address": address,
		"limit":   int64(limit),
	})
	if err != nil {
		a.log.Warn("neighborhood query failed", "address", address, "error", err)
		return nil, err
	}
	return result.Records, nil
}
