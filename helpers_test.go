package neograph

import (
	"context"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// fakeRunner is a DBRunner answering every query through fn and recording the calls.
type fakeRunner struct {
	mu    sync.Mutex
	calls []fakeCall
	fn    func(query string, params map[string]interface{}) (*neo4j.EagerResult, error)
}

type fakeCall struct {
	query  string
	params map[string]interface{}
}

func (f *fakeRunner) Run(_ context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{query: query, params: params})
	f.mu.Unlock()
	return f.fn(query, params)
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func node(id string, labels []string, props map[string]interface{}) neo4j.Node {
	return neo4j.Node{ElementId: id, Labels: labels, Props: props}
}

func rel(id, typ, start, end string, props map[string]interface{}) neo4j.Relationship {
	return neo4j.Relationship{
		ElementId:      id,
		Type:           typ,
		StartElementId: start,
		EndElementId:   end,
		Props:          props,
	}
}

func graphRecord(one, two neo4j.Node, r neo4j.Relationship) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"accountOne", "neighbors", "r"},
		Values: []any{one, two, r},
	}
}

func eager(records ...*neo4j.Record) *neo4j.EagerResult {
	return &neo4j.EagerResult{Records: records}
}

func txProps(gas int64) map[string]interface{} {
	return map[string]interface{}{
		"input":            "0x",
		"blockNumber":      int64(99),
		"gas":              gas,
		"from":             "0xa",
		"transactionIndex": int64(0),
		"to":               "0xb",
		"value":            int64(1000000000000000000),
		"gasPrice":         int64(20000000000),
		"nonce":            int64(7),
	}
}
