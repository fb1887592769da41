package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vsinha/reorder/pkg/application/services"
	"github.com/vsinha/reorder/pkg/infrastructure/config"
	"github.com/vsinha/reorder/pkg/infrastructure/logging"
	"github.com/vsinha/reorder/pkg/infrastructure/repositories/jsonfile"
	"github.com/vsinha/reorder/pkg/interfaces/cli/prompt"
)

// application holds the services shared by every command
type application struct {
	logger     *zap.Logger
	inventory  *services.InventoryService
	reconciler *services.StockReconciler
}

func newApplication(cfg *config.Config, errOut io.Writer, clock services.Clock) (*application, error) {
	logger, err := logging.New(cfg.Log, errOut)
	if err != nil {
		return nil, err
	}

	store := jsonfile.NewItemStore(cfg.DataFile)
	logger.Debug("using item store", zap.String("path", store.Path()))

	return &application{
		logger:     logger,
		inventory:  services.NewInventoryService(store, logger, clock),
		reconciler: services.NewStockReconciler(store, logger),
	}, nil
}

// NewRootCommand builds the command tree. Without a subcommand it runs the
// interactive menu on in/out; errOut receives log output. A nil clock uses the
// local date.
func NewRootCommand(in io.Reader, out, errOut io.Writer, clock services.Clock) *cobra.Command {
	var (
		configFile string
		app        *application
	)

	cmd := &cobra.Command{
		Use:           "reorder",
		Short:         "Track raw-material stock and work out when to reorder",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			app, err = newApplication(cfg, errOut, clock)
			if err != nil {
				return fmt.Errorf("failed to initialise: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			menu := NewMenu(app.inventory, app.reconciler, prompt.NewPrompter(in, out), clock)
			return menu.Run(cmd.Context())
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./reorder.yaml)")
	flags.String("data", "stock.json", "path to the JSON item store")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-file", "", "also write JSON logs to this rotating file")

	cmd.AddCommand(newCheckCommand(func() *application { return app }, out, clock))
	return cmd
}
