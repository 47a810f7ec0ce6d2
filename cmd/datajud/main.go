// Comando datajud consulta processos judiciais na API pública do Datajud.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/prefeitura-rio/app-busca-processos/internal/config"
	"github.com/prefeitura-rio/app-busca-processos/internal/search"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/adapter"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/query"
)

var (
	verbose      bool
	interactive  bool
	jsonOutput   bool
	plainOutput  bool
	defaultCourt string
	timeout      time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "datajud [consulta]",
	Short: "Consulta processos judiciais na API pública do Datajud (CNJ)",
	Long: `Consulta processos judiciais na API pública do Datajud.

Se o texto contiver um número CNJ (NNNNNNN-DD.AAAA.J.TR.OOOO), o tribunal é
identificado pelos segmentos J e TR e a busca é exata. Caso contrário, os
termos são buscados em classe, assunto, órgão julgador e valor da causa no
tribunal padrão.`,
	Example: `  datajud "0000001-70.2020.1.01.0000"
  datajud --json "habeas corpus"
  datajud -i`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("erro ao iniciar logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runQuery,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Exibe logs detalhados")
	rootCmd.PersistentFlags().StringVar(&defaultCourt, "tribunal", "", "Tribunal para texto livre (default: DATAJUD_DEFAULT_COURT ou stf)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Timeout de cada requisição (default: DATAJUD_TIMEOUT_SECONDS)")

	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Modo interativo (sair com exit ou quit)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Imprime o resultado normalizado em JSON")
	rootCmd.Flags().BoolVar(&plainOutput, "plain", false, "Imprime markdown sem formatação de terminal")

	rootCmd.AddCommand(tribunaisCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runQuery(cmd *cobra.Command, args []string) error {
	if !interactive && len(args) == 0 {
		return fmt.Errorf("informe uma consulta ou use -i para o modo interativo")
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	p, err := newPrinter(cmd.OutOrStdout(), jsonOutput, plainOutput)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cli := &session{engine: engine, printer: p, logger: logger}
	if interactive {
		return cli.interactive(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return cli.query(ctx, strings.Join(args, " "))
}

// newEngine monta o pipeline a partir do ambiente e das flags
func newEngine() (*search.Engine, error) {
	cfg := config.LoadConfig()

	if defaultCourt != "" {
		cfg.DatajudDefaultCourt = strings.ToLower(defaultCourt)
	}
	if timeout > 0 {
		cfg.DatajudTimeout = timeout
	}

	directory := court.Default()
	router, err := query.NewRouter(directory,
		query.WithDefaultCourt(cfg.DatajudDefaultCourt),
		query.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	datajud := adapter.NewDatajudAdapter(directory, adapter.DatajudConfig{
		BaseURL: cfg.DatajudBaseURL,
		APIKey:  cfg.DatajudAPIKey,
		Timeout: cfg.DatajudTimeout,
	}, logger)

	return search.NewEngine(router, datajud, directory, logger), nil
}
