package root

import (
	"github.com/dinerozz/screen-time-backend/cmd/importer"
	"github.com/dinerozz/screen-time-backend/cmd/migrate"
	"github.com/dinerozz/screen-time-backend/cmd/report"
	"github.com/dinerozz/screen-time-backend/config"
	"github.com/dinerozz/screen-time-backend/server"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screen-time-backend",
	Short: "Screen time usage timeline application",
}

func GetRootCmd(config *config.Config) *cobra.Command {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			server.RunServer(config)
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(config.Store.Path))
	rootCmd.AddCommand(importer.GetImportCmd(config))
	rootCmd.AddCommand(report.GetReportCmd(config))

	return rootCmd
}
