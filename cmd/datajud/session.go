package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-busca-processos/internal/models"
	"github.com/prefeitura-rio/app-busca-processos/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// resolver é o pipeline de consulta usado pela sessão
type resolver interface {
	Resolve(ctx context.Context, text string) (*models.NormalizedResult, error)
}

// printer escreve resultados como JSON, markdown puro ou markdown formatado
type printer struct {
	out      io.Writer
	json     bool
	renderer *glamour.TermRenderer
}

func newPrinter(out io.Writer, asJSON, plain bool) (*printer, error) {
	p := &printer{out: out, json: asJSON}
	if asJSON || plain {
		return p, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar renderizador: %w", err)
	}
	p.renderer = r
	return p, nil
}

func (p *printer) print(result *models.NormalizedResult) error {
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	md := render.Markdown(result)
	if p.renderer != nil {
		out, err := p.renderer.Render(md)
		if err != nil {
			return fmt.Errorf("erro ao renderizar resultado: %w", err)
		}
		md = out
	}
	_, err := io.WriteString(p.out, md)
	return err
}

// session executa consultas isoladas ou o laço interativo
type session struct {
	engine  resolver
	printer *printer
	logger  *zap.Logger
}

func (s *session) query(ctx context.Context, text string) error {
	result, err := s.engine.Resolve(ctx, text)
	if err != nil {
		return err
	}
	return s.printer.print(result)
}

// interactive lê consultas linha a linha até exit, quit ou EOF.
// Erros de consulta são exibidos e o laço continua.
func (s *session) interactive(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, titleStyle.Render("Consulta Datajud - modo interativo"))
	fmt.Fprintln(out, "Digite um número de processo ou termos de busca. Use exit ou quit para sair.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n"+promptStyle.Render("datajud> "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit", "sair":
			return nil
		}

		if err := s.query(ctx, line); err != nil {
			if s.logger != nil {
				s.logger.Debug("consulta falhou", zap.String("query", line), zap.Error(err))
			}
			fmt.Fprintln(out, errorStyle.Render("Erro: "+err.Error()))
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
