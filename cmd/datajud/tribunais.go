package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
	"github.com/prefeitura-rio/app-busca-processos/internal/utils"
)

var tribunaisCmd = &cobra.Command{
	Use:   "tribunais [filtro]",
	Short: "Lista os tribunais e endpoints conhecidos",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) == 1 {
			filter = args[0]
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CÓDIGO\tRAMO\tTR\tENDPOINT\tNOME")
		for _, d := range court.Default().All() {
			if filter != "" && !utils.ContemTermo(d.Name, filter) && !utils.ContemTermo(d.Code, filter) {
				continue
			}
			fmt.Fprintf(w, "%s\t%s - %s\t%s\t%s\t%s\n", d.Code, d.Justice, d.JusticeName, d.CourtID, d.Endpoint, d.Name)
		}
		return w.Flush()
	},
}
