package neograph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neighborhoods answers neighborhood queries from a canned result per address.
func neighborhoods(byAddress map[string]*neo4j.EagerResult) *fakeRunner {
	return &fakeRunner{fn: func(_ string, params map[string]interface{}) (*neo4j.EagerResult, error) {
		if res, ok := byAddress[params["address"].(string)]; ok {
			return res, nil
		}
		return eager(), nil
	}}
}

func TestAnalyzer_GraphForAccount(t *testing.T) {
	x := node("1", []string{"Account", "External"}, map[string]interface{}{"address": "0xabc"})
	y := node("2", []string{"Account", "Contract"}, map[string]interface{}{"address": "0xdef"})
	runner := neighborhoods(map[string]*neo4j.EagerResult{
		"0xabc": eager(graphRecord(x, y, rel("10", "Transaction", "1", "2", txProps(1)))),
	})
	analyzer := NewAnalyzer(runner, nil)

	graph, err := analyzer.GraphForAccount(context.Background(), "0xABC")
	require.NoError(t, err)

	require.Equal(t, 1, runner.callCount())
	call := runner.calls[0]
	assert.Equal(t, neighborhoodQuery, call.query)
	assert.Equal(t, "0xabc", call.params["address"])
	assert.Equal(t, int64(AccountLinkLimit), call.params["limit"])

	assert.Len(t, graph.Nodes, 2)
	require.Len(t, graph.Links, 1)
	assert.Equal(t, 0, graph.Links[0].Source)
	assert.Equal(t, 1, graph.Links[0].Target)
}

func TestAnalyzer_GraphForAccount_QueryFailure(t *testing.T) {
	boom := errors.New("database unavailable")
	runner := &fakeRunner{fn: func(string, map[string]interface{}) (*neo4j.EagerResult, error) {
		return nil, boom
	}}

	graph, err := NewAnalyzer(runner, nil).GraphForAccount(context.Background(), "0xabc")

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, graph)
}

func TestAnalyzer_GraphForAccounts(t *testing.T) {
	a := node("a", []string{"Account", "External"}, nil)
	b := node("b", []string{"Account", "Contract"}, nil)
	c := node("c", []string{"Block"}, map[string]interface{}{"blockNumber": int64(7)})
	d := node("d", []string{"Account", "External"}, nil)

	slow := make(chan struct{})
	runner := &fakeRunner{fn: func(_ string, params map[string]interface{}) (*neo4j.EagerResult, error) {
		switch params["address"] {
		case "0x1":
			// Finish last so that completion order differs from submission order.
			<-slow
			return eager(graphRecord(a, b, rel("ab", "Transaction", "a", "b", nil))), nil
		case "0x2":
			return eager(
				graphRecord(d, c, rel("dc", "Mined", "c", "d", nil)),
				graphRecord(d, b, rel("db", "Transaction", "d", "b", nil)),
			), nil
		default:
			defer close(slow)
			return eager(), nil
		}
	}}
	analyzer := NewAnalyzer(runner, nil)

	graph, err := analyzer.GraphForAccounts(context.Background(), `["0x1", "0X2", "0x3"]`)
	require.NoError(t, err)

	assert.Equal(t, 3, runner.callCount())
	for _, call := range runner.calls {
		assert.Equal(t, int64(BatchLinkLimit), call.params["limit"])
	}

	ids := make([]string, 0, len(graph.Nodes))
	for _, n := range graph.Nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids)

	linkIDs := make([]string, 0, len(graph.Links))
	for _, l := range graph.Links {
		linkIDs = append(linkIDs, l.ID)
	}
	assert.Equal(t, []string{"ab", "dc", "db"}, linkIDs)
	assert.Equal(t, 3, graph.Links[1].Source)
	assert.Equal(t, 2, graph.Links[1].Target)
}

func TestAnalyzer_GraphForAccounts_AllOrNothing(t *testing.T) {
	x := node("1", []string{"External"}, nil)
	y := node("2", []string{"Contract"}, nil)
	boom := errors.New("query timed out")

	runner := &fakeRunner{fn: func(_ string, params map[string]interface{}) (*neo4j.EagerResult, error) {
		if params["address"] == "0xbad" {
			return nil, boom
		}
		time.Sleep(5 * time.Millisecond)
		return eager(graphRecord(x, y, rel("10", "Transaction", "1", "2", nil))), nil
	}}

	graph, err := NewAnalyzer(runner, nil).GraphForAccounts(context.Background(), `["0xa", "0xbad", "0xc", "0xd"]`)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, graph)
	assert.Equal(t, 4, runner.callCount(), "siblings run to completion")
}

func TestAnalyzer_GraphForAccounts_InvalidInput(t *testing.T) {
	runner := neighborhoods(nil)
	analyzer := NewAnalyzer(runner, nil)

	for _, input := range []string{
		``,
		`0xabc`,
		`{"address": "0xabc"}`,
		`[1, 2]`,
		`null`,
		`["0xa", null]`,
		`["0xa", ""]`,
		`["0xa", "   "]`,
	} {
		graph, err := analyzer.GraphForAccounts(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidAddressList, input)
		assert.Nil(t, graph, input)
	}
	assert.Zero(t, runner.callCount())
}

func TestAnalyzer_GraphForAccounts_EmptyList(t *testing.T) {
	runner := neighborhoods(nil)

	graph, err := NewAnalyzer(runner, nil).GraphForAccounts(context.Background(), `[]`)
	require.NoError(t, err)

	assert.Empty(t, graph.Nodes)
	assert.Empty(t, graph.Links)
	assert.Zero(t, runner.callCount())
}
