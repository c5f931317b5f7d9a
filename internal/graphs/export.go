package graphs

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/sugawarayuuta/sonnet"
)

// WriteJSON renders the whole report as one JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	b, err := sonnet.Marshal(r)
	if err != nil {
		return fmt.Errorf("graphs: marshal report: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// WriteCSV renders one row per point: graph id, unit, series label,
// x, y.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"graph", "unit", "series", "size", "duration"}); err != nil {
		return err
	}
	for _, g := range r.Graphs {
		for _, s := range g.Series {
			for _, p := range s.Points {
				row := []string{g.ID, g.Unit, s.Label, p.X, strconv.FormatInt(p.Y, 10)}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// chartsPage is a self-contained Google Charts line-chart page, one
// chart per graph, sizes on the x axis.
var chartsPage = template.Must(template.New("charts").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>seqbench results</title>
<script src="https://www.gstatic.com/charts/loader.js"></script>
<script>
google.charts.load('current', {packages: ['corechart']});
google.charts.setOnLoadCallback(drawAll);
function drawAll() {
{{range .Charts}}
  (function() {
    var data = new google.visualization.DataTable();
    data.addColumn('string', 'size');
{{range .Labels}}    data.addColumn('number', '{{.}}');
{{end}}    data.addRows([
{{range .Rows}}      ['{{.X}}'{{range .Ys}}, {{.}}{{end}}],
{{end}}    ]);
    var chart = new google.visualization.LineChart(document.getElementById('{{.ID}}'));
    chart.draw(data, {title: '{{.Title}}', vAxis: {title: '{{.Unit}}'}, width: 900, height: 480});
  })();
{{end}}
}
</script>
</head>
<body>
{{range .Charts}}<div id="{{.ID}}"></div>
{{end}}</body>
</html>
`))

type chartRow struct {
	X  string
	Ys []int64
}

type chart struct {
	ID, Title, Unit string
	Labels          []string
	Rows            []chartRow
}

// chartOf flattens a graph into per-row form: one row per x value of
// the first series, one column per series.
func chartOf(g *Graph) chart {
	c := chart{ID: g.ID, Title: g.Title, Unit: g.Unit}
	for _, s := range g.Series {
		c.Labels = append(c.Labels, s.Label)
	}
	for i, p := range g.Series[0].Points {
		row := chartRow{X: p.X}
		for _, s := range g.Series {
			if i < len(s.Points) {
				row.Ys = append(row.Ys, s.Points[i].Y)
			} else {
				row.Ys = append(row.Ys, 0)
			}
		}
		c.Rows = append(c.Rows, row)
	}
	return c
}

// WriteHTML renders a self-contained Google Charts page.
func (r *Report) WriteHTML(w io.Writer) error {
	var page struct {
		Charts []chart
	}
	for _, g := range r.Graphs {
		if len(g.Series) == 0 {
			continue
		}
		page.Charts = append(page.Charts, chartOf(g))
	}
	return chartsPage.Execute(w, page)
}
