package cli

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"memory-game/config"
	"memory-game/game"
	"memory-game/loghandler"
)

// NewRootCmd builds the memory command. Each call gets its own viper
// instance so flags, env and config file never leak between runs.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Play the single-player card game Memory",
		Long: `Memory hides pairs of cards on a square board. Flip two cards per turn
by typing their row and column; matching pairs stay face up. The game ends
when every pair is found, or when you quit.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "config file (default is ./config.json)")
	flags.IntP("dim", "d", 0, "board dimension, an even number; 0 asks at startup")
	flags.Int64("seed", 0, "random seed for the shuffle and hints; 0 uses the clock")
	flags.String("log-level", "warn", "log level written to stderr (debug, info, warn, error)")
	flags.Bool("no-rules", false, "skip the welcome banner and rules")
	flags.Bool("no-color", false, "render the board without styling")

	if err := bindFlags(v, flags, flagKeys); err != nil {
		panic(err)
	}

	return cmd
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"config":    "config",
	"dimension": "dim",
	"seed":      "seed",
	"log_level": "log-level",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("binding %s: no flag named %q", key, name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if noRules, _ := cmd.Flags().GetBool("no-rules"); noRules {
		cfg.ShowRules = false
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(loghandler.NewCompactHandler(cmd.ErrOrStderr(), level))
	slog.SetDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("starting", "tag", "cli", "seed", seed, "dimension", cfg.Dimension)

	out := cmd.OutOrStdout()
	con := game.NewConsole(cmd.InOrStdin(), out)
	renderer := game.NewRenderer(out, cfg.Color)

	if cfg.ShowRules {
		game.PrintRules(con, renderer, cfg)
	}

	dim := cfg.Dimension
	if dim == 0 {
		if dim, err = game.PromptDimension(con, cfg); err != nil {
			return fmt.Errorf("choosing board size: %w", err)
		}
	}

	board, err := game.NewBoard(dim, cfg.HiddenRune(), rng)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}

	session := game.NewSession(cfg, board, con, renderer, rng, logger)
	result, err := session.Run()
	if err != nil {
		logger.Warn("session interrupted", "tag", "cli", "session", result.SessionID, "err", err)
		return err
	}
	logger.Info("finished", "tag", "cli", "session", result.SessionID, "outcome", result.Outcome, "turns", result.Turns)
	return nil
}
