package report

import (
	"context"
	"fmt"
	"log"

	"github.com/dinerozz/screen-time-backend/config"
	"github.com/dinerozz/screen-time-backend/internal/repository"
	service "github.com/dinerozz/screen-time-backend/internal/service/timeline"
	"github.com/dinerozz/screen-time-backend/pkg/displayname"
	"github.com/dinerozz/screen-time-backend/pkg/utils"
	"github.com/spf13/cobra"
)

func GetReportCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "report [date]",
		Short: "Print a day's usage summary to stdout",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			db, err := repository.NewRepository(cfg.Store)
			if err != nil {
				log.Fatal("❌ Failed to connect to database:", err)
			}
			defer db.Close()

			srv := service.NewTimelineService(
				repository.NewUsageEventRepository(db),
				&cfg.Engine,
				displayname.NewResolver(cfg.DisplayNames),
				cfg.Location,
			)

			date := utils.Yesterday(cfg.Location)
			if len(args) == 1 {
				date = args[0]
			}

			timeline, err := srv.GetDayTimeline(context.Background(), date)
			if err != nil {
				log.Fatal("❌ Report failed:", err)
			}

			if len(timeline.Summaries) == 0 {
				fmt.Printf("No usage recorded for %s\n", date)
				return
			}

			fmt.Printf("Usage for %s\n\n", date)
			for _, summary := range timeline.Summaries {
				fmt.Printf("  %-30s %s\n", summary.DisplayName, utils.FormatMinutes(int(summary.TotalMinutes)))
			}

			stats := timeline.Stats
			fmt.Printf("\nTotal active: %s\n", stats.TotalFormatted)
			for _, window := range stats.IdleWindows {
				fmt.Printf("  idle %s - %s (%s)\n",
					window.Start.Format("15:04"),
					window.End.Format("15:04"),
					utils.FormatMinutes(int(window.Duration().Minutes())))
			}
			if timeline.DroppedEvents > 0 {
				fmt.Printf("\n%d malformed events discarded\n", timeline.DroppedEvents)
			}
		},
	}
}
