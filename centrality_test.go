package neograph

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulfrancisco-ruizacevedo/go-neograph/models"
)

func scoreRecord(address any, score any) *neo4j.Record {
	return &neo4j.Record{Keys: []string{"address", "score"}, Values: []any{address, score}}
}

func TestAnalyzer_DegreeCentrality(t *testing.T) {
	runner := &fakeRunner{fn: func(string, map[string]interface{}) (*neo4j.EagerResult, error) {
		return eager(scoreRecord("0xa", int64(12)), scoreRecord("0xb", int64(3))), nil
	}}
	analyzer := NewAnalyzer(runner, nil)

	for _, tt := range []struct {
		category string
		label    string
	}{
		{"account", ":Account)-"},
		{"External", ":External)-"},
		{"CONTRACT", ":Contract)-"},
	} {
		scores, err := analyzer.DegreeCentrality(context.Background(), tt.category)
		require.NoError(t, err, tt.category)
		assert.Equal(t, []models.CentralityScore{{Address: "0xa", Score: 12}, {Address: "0xb", Score: 3}}, scores)

		last := runner.calls[len(runner.calls)-1]
		assert.Contains(t, last.query, tt.label)
		assert.Equal(t, int64(DegreeLimit), last.params["limit"])
	}
}

func TestAnalyzer_DegreeCentrality_Errors(t *testing.T) {
	boom := errors.New("boom")
	runner := &fakeRunner{fn: func(string, map[string]interface{}) (*neo4j.EagerResult, error) {
		return nil, boom
	}}
	analyzer := NewAnalyzer(runner, nil)

	_, err := analyzer.DegreeCentrality(context.Background(), "miner")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Zero(t, runner.callCount())

	_, err = analyzer.DegreeCentrality(context.Background(), "account")
	assert.ErrorIs(t, err, boom)
}

func TestAnalyzer_BetweennessCentrality(t *testing.T) {
	runner := &fakeRunner{fn: func(query string, _ map[string]interface{}) (*neo4j.EagerResult, error) {
		return eager(scoreRecord("0xc", int64(40)), scoreRecord(nil, int64(1))), nil
	}}

	scores, err := NewAnalyzer(runner, nil).BetweennessCentrality(context.Background())
	require.NoError(t, err)

	assert.Equal(t, betweennessQuery, runner.calls[0].query)
	assert.Equal(t, []models.CentralityScore{{Address: "0xc", Score: 40}, {Address: "", Score: 1}}, scores)
}

func TestScoreRows_BadScore(t *testing.T) {
	_, err := scoreRows([]*neo4j.Record{scoreRecord("0xa", "many")})
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestScoreRows_MissingColumn(t *testing.T) {
	for _, keys := range [][]string{{"addr", "score"}, {"address", "degree"}} {
		record := &neo4j.Record{Keys: keys, Values: []any{"0xa", int64(2)}}
		scores, err := scoreRows([]*neo4j.Record{record})
		assert.ErrorIs(t, err, ErrMalformedRecord, keys)
		assert.Nil(t, scores, keys)
	}
}
