package neograph

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/models"
)

// DegreeLimit is the size of every degree centrality ranking.
const DegreeLimit = 10

// degreeQueries maps a category to the label its ranking starts from.
var degreeQueries = map[string]string{
	"account":  models.LabelAccount,
	"external": models.LabelExternal,
	"contract": models.LabelContract,
}

const degreeQuery = `MATCH (n:%s)-[r:Transaction]-(m:Account) ` +
	`RETURN n.address AS address, count(r) AS score ` +
	`ORDER BY score DESC LIMIT $limit`

// betweennessQuery counts how often each account lies strictly inside a shortest path
// between two other accounts. It is expensive; run it on a well provisioned server.
const betweennessQuery = `MATCH p=allShortestPaths((source:Account)-[:Transaction*]-(target:Account)) ` +
	`WHERE elementId(source) < elementId(target) AND length(p) > 1 ` +
	`UNWIND nodes(p)[1..-1] AS n ` +
	`RETURN n.address AS address, count(*) AS score ` +
	`ORDER BY score DESC`

// DegreeCentrality returns the DegreeLimit nodes of a category ("account", "external"
// or "contract") with the most Transaction relationships to accounts.
func (a *Analyzer) DegreeCentrality(ctx context.Context, category string) ([]models.CentralityScore, error) {
	label, ok := degreeQueries[strings.ToLower(category)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	result, err := a.runner.Run(ctx, fmt.Sprintf(degreeQuery, label), map[string]interface{}{
		"limit": int64(DegreeLimit),
	})
	if err != nil {
		a.log.Warn("degree centrality query failed", "category", category, "error", err)
		return nil, err
	}
	return scoreRows(result.Records)
}

// BetweennessCentrality returns every account lying on a shortest path, ordered by
// the number of paths it lies on.
func (a *Analyzer) BetweennessCentrality(ctx context.Context) ([]models.CentralityScore, error) {
	result, err := a.runner.Run(ctx, betweennessQuery, nil)
	if err != nil {
		a.log.Warn("betweenness centrality query failed", "error", err)
		return nil, err
	}
	return scoreRows(result.Records)
}

func scoreRows(records []*neo4j.Record) ([]models.CentralityScore, error) {
	scores := make([]models.CentralityScore, 0, len(records))
	for i, record := range records {
		address, ok := record.Get("address")
		if !ok {
			return nil, fmt.Errorf("%w: row %d has no address column", ErrMalformedRecord, i)
		}
		raw, ok := record.Get("score")
		if !ok {
			return nil, fmt.Errorf("%w: row %d has no score column", ErrMalformedRecord, i)
		}
		score, ok := raw.(int64)
		if !ok {
			return nil, fmt.Errorf("%w: row %d score is %T", ErrMalformedRecord, i, raw)
		}
		scores = append(scores, models.CentralityScore{
			Address: stringify(address),
			Score:   score,
		})
	}
	return scores, nil
}
