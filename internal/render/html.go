package render

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTMLTitle é o título das páginas geradas
const HTMLTitle = "Consulta de Processos Judiciais - Datajud"

// HTML converte o markdown em uma página HTML completa.
// HTML embutido no markdown é descartado.
func HTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage | html.HrefTargetBlank | html.SkipHTML,
		Title: HTMLTitle,
	})
	return markdown.Render(doc, renderer)
}
