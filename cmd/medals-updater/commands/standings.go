package commands

import (
	"os"

	"fantasyolympics-backend/lib/configutil"
	"fantasyolympics-backend/lib/serviceutil"
	"fantasyolympics-backend/services/results"
	"fantasyolympics-backend/services/results/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(standingsCmd)
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Prints the per-country medal table from the results store.",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := configutil.ReadConfig[results.Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if config.Database == nil {
			serviceutil.Fatal("no database configured", os.ErrNotExist)
		}

		database, err := config.Database.OpenDB(db.Schema)
		if err != nil {
			serviceutil.Fatal("failed to open results database", err)
		}
		defer database.Close()

		standings, err := results.NewStore(database).Standings(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to query standings", err)
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Country", "G", "S", "B", "Total"})
		for i, standing := range standings {
			t.AppendRow(table.Row{
				i + 1,
				standing.Country,
				standing.Gold,
				standing.Silver,
				standing.Bronze,
				standing.Total(),
			})
		}
		t.Render()
	},
}
