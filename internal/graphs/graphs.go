// Package graphs accumulates benchmark results into named graphs and
// series and exports them. A graph groups every series measured for
// one operation and value type; a series holds the (size, duration)
// points of one container/allocator configuration.
package graphs

import "github.com/shivam-909/seqbench/internal/values"

// Sink receives results as they are measured. NewGraph must be
// called before any result for that graph; results then attach to
// the most recently declared graph, in call order.
type Sink interface {
	NewGraph(id, title, unit string)
	NewResult(series, x string, y int64)
}

// Point is one measurement: x is the size as text, Y the averaged
// duration in the graph's unit.
type Point struct {
	X string `json:"x"`
	Y int64  `json:"y"`
}

// Series is the ordered points of one configuration.
type Series struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

// Graph is one (operation, value type) pair.
type Graph struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Unit   string   `json:"unit"`
	Series []Series `json:"series"`
}

// Report implements Sink by accumulating everything in memory.
// Writers are strictly sequential; the engine never reports
// concurrently.
type Report struct {
	Graphs []*Graph `json:"graphs"`
}

// NewReport returns an empty accumulator.
func NewReport() *Report { return &Report{} }

func (r *Report) NewGraph(id, title, unit string) {
	r.Graphs = append(r.Graphs, &Graph{ID: id, Title: title, Unit: unit})
}

func (r *Report) NewResult(series, x string, y int64) {
	if len(r.Graphs) == 0 {
		panic("graphs: result reported before any graph was declared")
	}
	g := r.Graphs[len(r.Graphs)-1]
	for i := range g.Series {
		if g.Series[i].Label == series {
			g.Series[i].Points = append(g.Series[i].Points, Point{X: x, Y: y})
			return
		}
	}
	g.Series = append(g.Series, Series{Label: series, Points: []Point{{X: x, Y: y}}})
}

// Tag sanitizes a title into a graph identifier: every character
// outside [A-Za-z0-9_] becomes an underscore.
func Tag(title string) string {
	out := []byte(title)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

// NewGraphFor declares the graph for one operation over the value
// type T, titled "operation - TypeName".
func NewGraphFor[T any](s Sink, operation, unit string) {
	title := operation + " - " + values.DisplayName[T]()
	s.NewGraph(Tag(title), title, unit)
}
