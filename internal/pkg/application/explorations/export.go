package explorations

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
)

const (
	FormatJSON = "json"
	FormatHTML = "html"

	// html exports render at most this many rows per result table
	maxExportRows = 100
)

type Export struct {
	Format string `json:"format"`
	Data   any    `json:"data"`
}

func (svc explorationSvc) Export(ctx context.Context, explorationID, format, userID string) (Export, error) {
	exploration, err := svc.access(ctx, explorationID, userID, false)
	if err != nil {
		return Export{}, err
	}

	cells, err := svc.storage.GetCells(ctx, explorationID)
	if err != nil {
		return Export{}, err
	}

	exploration.Cells = cells
	exploration.CellCount = len(cells)

	switch format {
	case "", FormatJSON:
		return Export{Format: FormatJSON, Data: exploration}, nil
	case FormatHTML:
		html, err := renderHTML(exploration)
		if err != nil {
			return Export{}, err
		}
		return Export{Format: FormatHTML, Data: html}, nil
	}

	return Export{}, fmt.Errorf("unsupported export format %q: %w", format, ErrInvalidInput)
}

type exportPage struct {
	Name        string
	Description string
	Cells       []exportCell
}

type exportCell struct {
	Type    string
	Text    string
	Query   string
	Columns []string
	Rows    [][]string
}

const exportTemplate = `<html><head><title>{{.Name}}</title>
<style>
body{font-family:system-ui;max-width:900px;margin:0 auto;padding:20px}
pre{background:#f5f5f5;padding:12px;border-radius:4px;overflow-x:auto}
table{border-collapse:collapse;width:100%}
th,td{border:1px solid #ddd;padding:8px;text-align:left}
</style></head><body>
<h1>{{.Name}}</h1>
<p>{{.Description}}</p>
{{range .Cells}}{{if eq .Type "markdown"}}<div class="markdown">{{.Text}}</div>
{{else if eq .Type "sql"}}<pre class="sql">{{.Query}}</pre>
{{if .Columns}}<table><thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead><tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody></table>
{{end}}{{end}}{{end}}</body></html>`

var exportTmpl = template.Must(template.New("exploration").Parse(exportTemplate))

func renderHTML(exploration types.Exploration) (string, error) {
	page := exportPage{
		Name:        exploration.Name,
		Description: exploration.Description,
	}

	for _, cell := range exploration.Cells {
		c := exportCell{Type: cell.CellType}

		switch cell.CellType {
		case types.CellTypeMarkdown:
			c.Text, _ = cell.Content["text"].(string)
		case types.CellTypeSQL:
			c.Query, _ = cell.Content["query"].(string)
			if cell.Output != nil {
				c.Columns = outputColumns(cell.Output)
				c.Rows = outputRows(cell.Output, c.Columns, maxExportRows)
			}
		}

		page.Cells = append(page.Cells, c)
	}

	buf := &bytes.Buffer{}

	err := exportTmpl.Execute(buf, page)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// outputColumns extracts the column names from a stored cell output. The
// output has been through a json round trip, so the schema is a slice of
// untyped maps.
func outputColumns(output map[string]any) []string {
	schema, _ := output["schema"].([]any)

	columns := make([]string, 0, len(schema))
	for _, col := range schema {
		if m, ok := col.(map[string]any); ok {
			if name, ok := m["name"].(string); ok {
				columns = append(columns, name)
			}
		}
	}

	return columns
}

func outputRows(output map[string]any, columns []string, max int) [][]string {
	raw, _ := output["rows"].([]any)
	if len(raw) > max {
		raw = raw[:max]
	}

	rows := make([][]string, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}

		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, fmt.Sprintf("%v", m[col]))
		}

		rows = append(rows, row)
	}

	return rows
}
