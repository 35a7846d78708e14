// Package models contains the data transfer objects produced by the neograph analyzer.
// The structs in this file describe a node-link graph, the format consumed by most
// frontend graph visualization libraries (e.g., D3.js force layouts).
package models

// Node categories assigned by label classification.
const (
	LabelExternal = "External"
	LabelContract = "Contract"
	LabelBlock    = "Block"
	LabelAccount  = "Account"
)

// Relationship types that are turned into links. Every other type is dropped.
const (
	LinkTransaction = "Transaction"
	LinkMined       = "Mined"
)

// Node represents a single, de-duplicated entity of the transaction graph.
type Node struct {
	// ID is the string form of the database identity of the node (ElementId).
	ID string `json:"id"`

	// Index is the position of the node in Graph.Nodes. It is assigned during aggregation.
	Index int `json:"index"`

	// Label is the single classified category of the node (e.g., "External", "Block").
	Label string `json:"label"`

	// Properties is a map containing the key-value properties of the node.
	Properties map[string]interface{} `json:"properties"`
}

// TransactionProperties is the fixed property set carried by a Transaction link.
// Numeric values are transported as decimal strings so that 256-bit amounts survive
// JSON clients that decode numbers as doubles.
type TransactionProperties struct {
	Input            string `json:"input"`
	BlockNumber      string `json:"blockNumber"`
	Gas              string `json:"gas"`
	From             string `json:"from"`
	TransactionIndex string `json:"transactionIndex"`
	To               string `json:"to"`
	Value            string `json:"value"`
	GasPrice         string `json:"gasPrice"`
}

// Link represents a relationship between two nodes of a Graph.
type Link struct {
	// ID is the string form of the relationship's database identity.
	ID string `json:"id"`

	// Source is the index in Graph.Nodes of the node where the relationship starts.
	Source int `json:"source"`

	// Target is the index in Graph.Nodes of the node where the relationship ends.
	Target int `json:"target"`

	// Type is the relationship's type, either "Transaction" or "Mined".
	Type string `json:"type"`

	// Properties is only set for Transaction links.
	Properties *TransactionProperties `json:"properties,omitempty"`

	// SourceID and TargetID hold the endpoint identities until they are resolved to indices.
	SourceID string `json:"-"`
	TargetID string `json:"-"`
}

// Graph is the top-level container returned by every graph query.
type Graph struct {
	// Nodes contains the unique nodes in first-seen order.
	Nodes []*Node `json:"nodes"`

	// Links contains one entry per accepted relationship occurrence.
	Links []*Link `json:"links"`
}

// CentralityScore is one row of a centrality ranking.
type CentralityScore struct {
	Address string `json:"address"`
	Score   int64  `json:"score"`
}
