package commands

import (
	"github.com/spf13/cobra"

	"mathclash/internal/app"
)

var (
	home        string
	passphrase  string
	seed        int64
	laxDivision bool
	verbose     bool
	appCtx      *app.Wire

	player string
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "mathclash",
		Short:        "Timed mental arithmetic game",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("passphrase") {
				cfg.Passphrase = passphrase
			}
			if flags.Changed("seed") {
				cfg.Seed = &seed
			}
			if flags.Changed("lax-division") {
				cfg.LaxDivision = laxDivision
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}

			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.mathclash)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal the score file")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "question generator seed (random when unset)")
	root.PersistentFlags().BoolVar(&laxDivision, "lax-division", false, "allow a second division at tier 3 after a single redraw")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		playCmd(),
		reviewCmd(),
		statsCmd(),
		leaderboardCmd(),
		questionCmd(),
		evalCmd(),
		checkCmd(),
	)
	return root
}
