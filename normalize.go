package neograph

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/models"
)

// labelPriority is evaluated in order; the first label present on a node wins.
// Nodes carrying none of them keep their first raw label.
var labelPriority = []string{
	models.LabelExternal,
	models.LabelContract,
	models.LabelBlock,
}

// classifyLabel picks the single category of a node from its label set.
func classifyLabel(labels []string) string {
	for _, candidate := range labelPriority {
		if slices.Contains(labels, candidate) {
			return candidate
		}
	}
	if len(labels) == 0 {
		return ""
	}
	return labels[0]
}

// NormalizeNode converts a raw Neo4j node into a models.Node.
// The returned properties are a copy; the driver's map is left untouched.
// Index is left at zero and assigned by the aggregator.
func NormalizeNode(n neo4j.Node) *models.Node {
	label := classifyLabel(n.Labels)

	props := maps.Clone(n.Props)
	if props == nil {
		props = make(map[string]interface{})
	}
	if label == models.LabelBlock {
		if v, ok := props["blockNumber"]; ok {
			props["blockNumber"] = stringify(v)
		}
	}

	return &models.Node{
		ID:         n.ElementId,
		Label:      label,
		Properties: props,
	}
}

// stringify renders a property value in its decimal string form.
// Missing values become the empty string.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
