package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cryptogram/cryptogram/internal/config"
	"github.com/cryptogram/cryptogram/internal/game"
	"github.com/cryptogram/cryptogram/internal/puzzle"
	"github.com/cryptogram/cryptogram/internal/render"
	"github.com/cryptogram/cryptogram/internal/term"
	"github.com/cryptogram/cryptogram/internal/tui"
)

const usage = "Usage: cryptogram [--help]\n" +
	"  --help: Display this menu\n"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, play))
}

// execute runs the command and turns every failure, panics included, into
// a diagnostic on stderr and exit status 1.
func execute(args []string, stdout, stderr io.Writer, run func(*cobra.Command) error) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				fmt.Fprintf(stderr, "Exception: %v\n", err)
			} else {
				fmt.Fprintln(stderr, "Unknown error occurred")
			}
			code = 1
		}
	}()

	cmd := newRootCmd(run)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Exception: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(run func(*cobra.Command) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cryptogram",
		Short:         "Solve a letter substitution puzzle in the terminal",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}
	cmd.FParseErrWhitelist.UnknownFlags = true
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), usage)
	})
	return cmd
}

func play(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, closer, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer closer.Close()

	variant, err := game.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}
	text, attribution, err := loadText(cfg)
	if err != nil {
		return fmt.Errorf("loading text: %w", err)
	}
	p, err := puzzle.New(text, puzzle.RandomLetterMap())
	if err != nil {
		log.Error().Err(err).Msg("encoding failed")
		return fmt.Errorf("building puzzle: %w", err)
	}

	log.Info().
		Str("source", cfg.Source).
		Str("frontend", cfg.Frontend).
		Stringer("variant", variant).
		Int("length", len(p.Text)).
		Msg("session started")

	s := game.NewSession(p, variant, log)
	if cfg.Frontend == "tea" {
		err = tui.Run(s, attribution, log)
	} else {
		err = playANSI(cmd.Context(), s, newANSI(cfg, variant), log)
	}
	if err != nil {
		log.Error().Err(err).Msg("session ended")
	}
	return err
}

// newANSI builds the repaint renderer; any NO_COLOR value drops the SGR codes.
func newANSI(cfg config.Config, v game.Variant) *render.ANSI {
	r := render.NewANSI(v)
	r.Color = cfg.NoColor == ""
	return r
}

func playANSI(ctx context.Context, s *game.Session, r term.Renderer, log zerolog.Logger) error {
	mode, err := term.Enter(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw input mode: %w", err)
	}
	defer func() {
		if err := mode.Restore(); err != nil {
			log.Error().Err(err).Msg("terminal restore failed")
		}
	}()
	stop := mode.RestoreOnSignal(nil)
	defer stop()

	return term.Run(ctx, os.Stdin, os.Stdout, s, r)
}
