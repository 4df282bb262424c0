package commands

import (
	"context"

	"fantasyolympics-backend/lib/configutil"
	"fantasyolympics-backend/lib/serviceutil"
	"fantasyolympics-backend/lib/telemetry"
	"fantasyolympics-backend/services/results"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs one ingestion pass: fetch, extract, deduplicate, upsert.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		tel, err := telemetry.SetupFromEnv(ctx, "medals-updater")
		if err == nil {
			defer tel.Shutdown(context.Background())
			telemetry.InstrumentPerfStats(ctx)
		}

		config, err := configutil.ReadConfig[results.Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		service, err := results.NewService(config)
		if err != nil {
			serviceutil.Fatal("failed to initialize pipeline", err)
		}

		// per-record sink failures are reported via counts only, a
		// run is fatal solely when no source yielded a payload
		_, err = service.Run(ctx)
		if err != nil {
			serviceutil.Fatal("run failed", err)
		}
	},
}
