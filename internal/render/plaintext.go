package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// PlainText remove a formatação markdown e retorna apenas o texto
func PlainText(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	for strings.Contains(result, "\n\n\n") {
		result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	}
	return result
}

// extractText percorre a AST acumulando o conteúdo textual
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.CodeBlock:
		buf.Write(bytes.TrimRight(n.Literal, "\n"))
		buf.WriteString("\n\n")
		return
	case *ast.Hardbreak:
		buf.WriteString("\n")
		return
	case *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	if item, ok := node.(*ast.ListItem); ok {
		if item.ListFlags&ast.ListTypeOrdered != 0 {
			fmt.Fprintf(buf, "%d. ", position(item))
		} else {
			buf.WriteString("• ")
		}
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph:
		if _, inItem := node.GetParent().(*ast.ListItem); inItem {
			buf.WriteString("\n")
		} else {
			buf.WriteString("\n\n")
		}
	case *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List:
		if _, nested := node.GetParent().(*ast.ListItem); !nested {
			buf.WriteString("\n")
		}
	case *ast.BlockQuote:
		buf.WriteString("\n")
	}
}

// position retorna a posição (a partir de 1) do item na lista
func position(item ast.Node) int {
	parent := item.GetParent()
	if parent == nil {
		return 1
	}
	for i, sibling := range parent.GetChildren() {
		if sibling == item {
			return i + 1
		}
	}
	return 1
}
