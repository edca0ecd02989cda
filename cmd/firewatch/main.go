package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	firewatch "github.com/seattlefirewatch/firewatch"
	"github.com/seattlefirewatch/firewatch/config"
	"github.com/seattlefirewatch/firewatch/feed"
	"github.com/seattlefirewatch/firewatch/incident"
)

var (
	configPath string
	port       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "firewatch",
		Short: "Serve the live Seattle fire incident map API",
		Long: `firewatch polls the Seattle Fire Department incident feed and the
Real-Time 911 dispatch page, reconciles them into a live incident view and
serves the result as a JSON API for the map frontend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			firewatch.InitLogging()
			if err := config.LoadAppConfig(configPath); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if port > 0 {
				config.Config.Server.Port = port
			}

			app := firewatch.NewApp(config.Config)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			app.StartPolling(ctx)
			firewatch.StartServer(app)
			firewatch.HandleGracefulShutdown(app)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (optional; defaults apply)")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Override the listen port")

	addListCmd(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addListCmd adds a 'list' subcommand that does a one-shot fetch and prints
// the current incidents without starting the server.
func addListCmd(rootCmd *cobra.Command) {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the last 24 hours of incidents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadAppConfig(configPath); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			client := feed.NewIncidentClient(config.Config.Incidents)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			incidents, err := client.FetchOnce(ctx)
			if err != nil {
				return fmt.Errorf("fetch incidents: %w", err)
			}

			if len(incidents) == 0 {
				cmd.Println("No incidents in the last 24 hours.")
				return nil
			}

			for _, inc := range incidents {
				cat := incident.Categorize(inc.Type)
				cmd.Println("---")
				cmd.Println(fmt.Sprintf("Incident: %s", inc.ID))
				cmd.Println(fmt.Sprintf("Type: %s (%s)", inc.Type, cat))
				cmd.Println(fmt.Sprintf("Address: %s", inc.Address))
				cmd.Println(fmt.Sprintf("Time: %s", inc.Datetime.Format(time.RFC3339)))
			}
			cmd.Println(fmt.Sprintf("%d incidents", len(incidents)))
			return nil
		},
	}

	rootCmd.AddCommand(listCmd)
}
