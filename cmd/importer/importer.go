package importer

import (
	"context"
	"fmt"
	"log"

	"github.com/dinerozz/screen-time-backend/config"
	"github.com/dinerozz/screen-time-backend/internal/repository"
	service "github.com/dinerozz/screen-time-backend/internal/service/importer"
	"github.com/dinerozz/screen-time-backend/pkg/utils"
	"github.com/spf13/cobra"
)

func GetImportCmd(cfg *config.Config) *cobra.Command {
	var listDates bool

	importCmd := &cobra.Command{
		Use:   "import [date]",
		Short: "Import a day's usage from the macOS Screen Time database",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			db, err := repository.NewRepository(cfg.Store)
			if err != nil {
				log.Fatal("❌ Failed to connect to database:", err)
			}
			defer db.Close()

			knowledgeDB, err := repository.NewKnowledgeDB(cfg.Store.KnowledgePath)
			if err != nil {
				log.Fatal("❌ Failed to open knowledge database:", err)
			}
			defer knowledgeDB.Close()

			srv := service.NewImporterService(
				repository.NewUsageEventRepository(db),
				repository.NewKnowledgeRepository(knowledgeDB),
				cfg.Location,
			)

			ctx := context.Background()

			if listDates {
				dates, err := srv.AvailableDates(ctx)
				if err != nil {
					log.Fatal("❌ Failed to list dates:", err)
				}
				for _, date := range dates {
					fmt.Println(date)
				}
				return
			}

			date := utils.Yesterday(cfg.Location)
			if len(args) == 1 {
				date = args[0]
			}

			result, err := srv.ImportDay(ctx, date)
			if err != nil {
				log.Fatal("❌ Import failed:", err)
			}

			fmt.Printf("✅ Imported %d events for %s (replaced %d)\n", result.Imported, result.Date, result.Replaced)
		},
	}

	importCmd.Flags().BoolVarP(&listDates, "list", "l", false, "List dates available in the Screen Time database")

	return importCmd
}
