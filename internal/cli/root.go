package cli

import (
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/SscSPs/bookkeeping_core/internal/platform/storage"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// Option adjusts how the command tree obtains its dependencies.
type Option func(*app)

// WithConfig uses cfg instead of loading it from the environment.
func WithConfig(cfg *config.Config) Option {
	return func(a *app) { a.cfg = cfg }
}

// WithStorage uses an already opened storage. The caller keeps ownership.
func WithStorage(s *storage.Storage) Option {
	return func(a *app) { a.store = s }
}

// app holds what the subcommands share. It is filled in lazily so that
// --help and flag errors never touch the database.
type app struct {
	cfg       *config.Config
	store     *storage.Storage
	ownsStore bool
	logger    *slog.Logger
	services  *portssvc.ServiceContainer
	amounts   *utils.AmountFormatter
	locale    string
}

// NewRootCommand creates the bookctl command with all subcommands registered.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{}
	for _, opt := range opts {
		opt(a)
	}

	rootCmd := &cobra.Command{
		Use:   "bookctl",
		Short: "Operate the bookkeeping core: migrations, company setup, VAT and year-end closing",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.locale, "locale", "en", "BCP 47 tag used to format amounts, e.g. sv")

	rootCmd.AddCommand(
		newMigrateCommand(a),
		newCompanyCommand(a),
		newAccountsCommand(a),
		newCloseYearCommand(a),
		newVatSummaryCommand(a),
		newExportStatementsCommand(a),
	)
	return rootCmd
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	if a.cfg == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.cfg = cfg
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.LogLevel}))
	}
	return nil
}

// init opens storage and builds the service container.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}

	tag, err := language.Parse(a.locale)
	if err != nil {
		return fmt.Errorf("invalid --locale %q: %w", a.locale, err)
	}
	a.amounts = utils.NewAmountFormatter(tag)

	if a.store == nil {
		store, err := storage.Open(cmd.Context(), a.cfg, a.logger)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		a.store = store
		a.ownsStore = true
	}

	closing := services.ClosingConfigFrom(a.cfg.CorporateTaxRate, a.cfg.CurrentYearResultAccount, a.cfg.RetainedEarningsAccount)
	a.services = services.NewContainer(a.store.Repos, closing)
	return nil
}

func (a *app) close() {
	if a.ownsStore {
		a.store.Close()
		a.store = nil
		a.ownsStore = false
	}
}

func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
