package neograph

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/models"
)

// ConvertRecords maps the records of a neighborhood query into a single graph.
//
// Every record must be a (nodeOne, nodeTwo, relationship) tuple, as returned by
// `RETURN accountOne, neighbors, r`. Nodes are de-duplicated by identity and kept in
// first-seen order; a node seen again keeps the properties of its first occurrence.
// Links are not de-duplicated: every accepted relationship occurrence yields one link.
// Once all records are consumed, link endpoints are rewritten from identities to
// positions in the node slice.
//
// Returns:
//   - The aggregated graph. An empty input produces a graph with empty, non-nil slices.
//   - ErrMalformedRecord if a record does not have the expected shape.
//   - ErrDanglingLink if a link references a node that is not part of the result.
func ConvertRecords(records []*neo4j.Record) (*models.Graph, error) {
	graph := &models.Graph{
		Nodes: make([]*models.Node, 0),
		Links: make([]*models.Link, 0),
	}
	// positions doubles as the seen-set and the identity -> index lookup.
	positions := make(map[string]int)

	addNode := func(n neo4j.Node) {
		if _, seen := positions[n.ElementId]; seen {
			return
		}
		node := NormalizeNode(n)
		node.Index = len(graph.Nodes)
		positions[node.ID] = node.Index
		graph.Nodes = append(graph.Nodes, node)
	}

	for i, record := range records {
		nodeOne, nodeTwo, rel, err := splitRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		addNode(nodeOne)
		addNode(nodeTwo)

		if link, ok := ClassifyLink(rel); ok {
			graph.Links = append(graph.Links, link)
		}
	}

	for _, link := range graph.Links {
		source, ok := positions[link.SourceID]
		if !ok {
			return nil, fmt.Errorf("%w: link %s source %s", ErrDanglingLink, link.ID, link.SourceID)
		}
		target, ok := positions[link.TargetID]
		if !ok {
			return nil, fmt.Errorf("%w: link %s target %s", ErrDanglingLink, link.ID, link.TargetID)
		}
		link.Source = source
		link.Target = target
	}

	return graph, nil
}

// splitRecord extracts the fixed (node, node, relationship) tuple of a record.
func splitRecord(record *neo4j.Record) (neo4j.Node, neo4j.Node, neo4j.Relationship, error) {
	var (
		one, two neo4j.Node
		rel      neo4j.Relationship
	)
	if record == nil || len(record.Values) < 3 {
		return one, two, rel, fmt.Errorf("%w: expected 3 values", ErrMalformedRecord)
	}

	one, ok := record.Values[0].(neo4j.Node)
	if !ok {
		return one, two, rel, fmt.Errorf("%w: value 0 is %T, not a node", ErrMalformedRecord, record.Values[0])
	}
	two, ok = record.Values[1].(neo4j.Node)
	if !ok {
		return one, two, rel, fmt.Errorf("%w: value 1 is %T, not a node", ErrMalformedRecord, record.Values[1])
	}
	rel, ok = record.Values[2].(neo4j.Relationship)
	if !ok {
		return one, two, rel, fmt.Errorf("%w: value 2 is %T, not a relationship", ErrMalformedRecord, record.Values[2])
	}
	return one, two, rel, nil
}
