package neograph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/models"
)

// ClassifyLink converts a raw relationship into a models.Link.
// Only Transaction and Mined relationships are supported; for every other type
// ClassifyLink returns false and the relationship must be dropped.
//
// Source and Target are not set; the endpoints are carried in SourceID and TargetID
// until the aggregator resolves them.
func ClassifyLink(r neo4j.Relationship) (*models.Link, bool) {
	link := &models.Link{
		ID:       r.ElementId,
		Type:     r.Type,
		SourceID: r.StartElementId,
		TargetID: r.EndElementId,
	}

	switch r.Type {
	case models.LinkTransaction:
		link.Properties = transactionProperties(r.Props)
	case models.LinkMined:
	default:
		return nil, false
	}
	return link, true
}

// transactionProperties keeps the fixed transaction fields and discards the rest.
func transactionProperties(props map[string]interface{}) *models.TransactionProperties {
	return &models.TransactionProperties{
		Input:            stringify(props["input"]),
		BlockNumber:      stringify(props["blockNumber"]),
		Gas:              stringify(props["gas"]),
		From:             stringify(props["from"]),
		TransactionIndex: stringify(props["transactionIndex"]),
		To:               stringify(props["to"]),
		Value:            stringify(props["value"]),
		GasPrice:         stringify(props["gasPrice"]),
	}
}
