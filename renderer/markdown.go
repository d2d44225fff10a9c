package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/stocktracker"
)

// summaryMarkdownTemplate is the template for rendering a portfolio in Markdown.
const summaryMarkdownTemplate = `# Portfolio Summary

Total Investment Value: **{{ .Total }}**
{{- if .Holdings }}

| Stock | Quantity | Price | Investment Value |
|:---|---:|---:|---:|
{{- range .Holdings }}
| {{ .Ticker }} | {{ .Quantity }} | {{ .Price }} | {{ .Value }} |
{{- end }}
| **Total** | | | **{{ .Total }}** |
{{- else }}

No holdings.
{{- end }}
`

// catalogMarkdownTemplate is the template for rendering the price table in Markdown.
const catalogMarkdownTemplate = `# Prices

| Stock | Price |
|:---|---:|
{{- range .Prices }}
| {{ .Ticker }} | {{ .Price }} |
{{- end }}
`

var (
	summaryTmpl = template.Must(template.New("summary").Parse(summaryMarkdownTemplate))
	catalogTmpl = template.Must(template.New("catalog").Parse(catalogMarkdownTemplate))
)

// SummaryMarkdown renders a portfolio as a markdown table.
func SummaryMarkdown(p *stocktracker.Portfolio) string {
	data := struct {
		Holdings []stocktracker.Holding
		Total    stocktracker.Money
	}{
		Total: p.Total(),
	}
	for _, h := range p.Holdings() {
		data.Holdings = append(data.Holdings, h)
	}
	return execute(summaryTmpl, data)
}

// CatalogMarkdown renders the price table as markdown, sorted by ticker.
func CatalogMarkdown(c *stocktracker.Catalog) string {
	type price struct {
		Ticker string
		Price  stocktracker.Money
	}
	var data struct{ Prices []price }
	for t := range c.Tickers() {
		p, _ := c.Lookup(t)
		data.Prices = append(data.Prices, price{t, p})
	}
	return execute(catalogTmpl, data)
}

func execute(tmpl *template.Template, data any) string {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", tmpl.Name(), err)
	}
	return b.String()
}
