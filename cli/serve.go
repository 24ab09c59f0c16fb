package cli

import (
	"log"
	"net/http"

	"github.com/color-game/schemefinder/api"
	"github.com/color-game/schemefinder/scheduler"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port, source string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheme finder HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			if cmd.Flags().Changed("port") {
				cfg.API.HTTPPort = port
			}
			if cmd.Flags().Changed("source") {
				cfg.SchemeSource = source
			}

			schemeRepo, closeRepo, err := openSchemeRepo(cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			app, err := api.NewApplication(cfg.API, schemeRepo)
			if err != nil {
				return err
			}
			log.Printf("Loaded %d color schemes from %s source", app.Palettes.Len(), cfg.SchemeSource)

			if cfg.API.AdminKeyHash == "" {
				log.Println("ADMIN_KEY_HASH not set, scheme loading endpoint is disabled")
			}

			sweeper := scheduler.NewScheduler(app.Sessions, cfg.API.SessionTTL, cfg.SweepInterval)
			sweeper.Start()
			defer sweeper.Stop()

			return app.Serve(http.NewServeMux())
		},
	}

	cmd.Flags().StringVar(&port, "port", ":8080", "listen address, overrides HTTP_PORT")
	cmd.Flags().StringVar(&source, "source", SourceEmbedded, "scheme source: embedded or postgres, overrides SCHEME_SOURCE")
	return cmd
}
