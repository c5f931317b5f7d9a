package graphs

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"

	"github.com/shivam-909/seqbench/internal/values"
)

func sampleReport() *Report {
	r := NewReport()
	r.NewGraph("fill_back___TrivialSmall", "fill_back - TrivialSmall", "us")
	r.NewResult("vector", "10", 3)
	r.NewResult("vector", "20", 8)
	r.NewResult("list", "10", 5)
	r.NewResult("list", "20", 12)
	r.NewGraph("sort___TrivialSmall", "sort - TrivialSmall", "ms")
	r.NewResult("vector", "100", 1)
	return r
}

func TestTag(t *testing.T) {
	assert.Equal(t, "fill_back___TrivialSmall", Tag("fill_back - TrivialSmall"))
	assert.Equal(t, "abc_123_", Tag("abc 123!"))
	assert.Equal(t, "already_clean", Tag("already_clean"))
}

func TestNewGraphFor(t *testing.T) {
	r := NewReport()
	NewGraphFor[values.TrivialSmall](r, "fill_back", "us")
	require.Len(t, r.Graphs, 1)
	assert.Equal(t, "fill_back - TrivialSmall", r.Graphs[0].Title)
	assert.Equal(t, "fill_back___TrivialSmall", r.Graphs[0].ID)
	assert.Equal(t, "us", r.Graphs[0].Unit)
}

func TestResultsAttachInOrder(t *testing.T) {
	r := sampleReport()
	require.Len(t, r.Graphs, 2)

	g := r.Graphs[0]
	require.Len(t, g.Series, 2)
	assert.Equal(t, "vector", g.Series[0].Label)
	assert.Equal(t, []Point{{X: "10", Y: 3}, {X: "20", Y: 8}}, g.Series[0].Points)
	assert.Equal(t, "list", g.Series[1].Label)

	// Results after a new graph go to the new graph.
	assert.Equal(t, "vector", r.Graphs[1].Series[0].Label)
	assert.Equal(t, []Point{{X: "100", Y: 1}}, r.Graphs[1].Series[0].Points)
}

func TestResultBeforeGraphPanics(t *testing.T) {
	r := NewReport()
	assert.Panics(t, func() { r.NewResult("vector", "10", 1) })
}

func TestWriteJSONRoundTrip(t *testing.T) {
	r := sampleReport()
	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	var back Report
	require.NoError(t, sonnet.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back.Graphs, 2)
	assert.Equal(t, r.Graphs[0].Series, back.Graphs[0].Series)
}

func TestWriteCSV(t *testing.T) {
	r := sampleReport()
	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "graph,unit,series,size,duration", lines[0])
	assert.Equal(t, "fill_back___TrivialSmall,us,vector,10,3", lines[1])
	assert.Equal(t, "sort___TrivialSmall,ms,vector,100,1", lines[5])
}

func TestWriteHTML(t *testing.T) {
	r := sampleReport()
	var buf bytes.Buffer
	require.NoError(t, r.WriteHTML(&buf))

	out := buf.String()
	assert.Contains(t, out, `google.visualization.LineChart`)
	assert.Contains(t, out, `fill_back___TrivialSmall`)
	assert.Contains(t, out, `'vector'`)
	assert.Contains(t, out, `['10', 3, 5],`)
}

func TestExportSQLite(t *testing.T) {
	r := sampleReport()
	path := filepath.Join(t.TempDir(), "results.db")
	require.NoError(t, r.ExportSQLite(path))

	// Exporting twice must replace, not duplicate.
	require.NoError(t, r.ExportSQLite(path))

	db, rows := openAndCount(t, path)
	defer db.Close()
	assert.Equal(t, 2, rows.graphs)
	assert.Equal(t, 5, rows.results)
}
