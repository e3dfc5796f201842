package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/printer"
	"github.com/iliyamo/venue-booking/internal/queue"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Consume activity events and append them to the activity log",
	Long: `Reads venue, artist and show events from RabbitMQ and appends one line
per event to ACTIVITY_LOG_PATH. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ec := config.LoadEventsConfig()
		log := newLogger(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL")).Named("activity")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		printer.Info("writing activity from %s to %s", ec.Queue, ec.LogPath)
		err := queue.StartActivityConsumer(ctx, queue.ConsumerConfig{URL: ec.URL, Queue: ec.Queue, LogPath: ec.LogPath}, log)
		if err != nil && !errors.Is(err, context.Canceled) {
			return printer.Error("Activity consumer failed", err.Error())
		}
		printer.Success("activity consumer stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
}
