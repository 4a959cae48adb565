package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"SplitTimer/audio"
	"SplitTimer/config"
	"SplitTimer/control"
	"SplitTimer/i18n"
	"SplitTimer/terminal"
	"SplitTimer/timer"
)

func main() {
	cmd := NewRootCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "splittimer: %v\n", err)
		os.Exit(1)
	}
}

// helpTemplate prints only the key bindings. They are rendered when help is
// shown, after flags are parsed, so --lang applies to them.
const helpTemplate = `{{index ExtraInfo "controls"}}`

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	cmd := &cli.Command{
		Name:                          "splittimer",
		Usage:                         "Terminal split timer",
		HideHelpCommand:               true,
		CustomRootCommandHelpTemplate: helpTemplate,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "chime",
				Usage: "Play a tone on each new split",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Message language (en, pt, es, ru)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging on stderr",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.IsSet("chime") {
				cfg.Chime = cmd.Bool("chime")
			}
			if cmd.IsSet("lang") {
				cfg.Lang = cmd.String("lang")
			}
			if cmd.IsSet("debug") {
				cfg.Debug = cmd.Bool("debug")
			}

			log, err := newLogger(cfg.Debug)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer log.Sync()

			i18n.Init(cfg.Lang, log)
			return run(cfg, log)
		},
	}
	cmd.ExtraInfo = func() map[string]string {
		i18n.Init(helpLang(cmd), zap.NewNop())
		return map[string]string{"controls": controlsHelp()}
	}
	return cmd
}

// helpLang picks the help language the same way the Action does: the flag
// wins over SPLITTIMER_LANG. Environment sources are not applied to flags
// until after help has been handled, so the config is read directly.
func helpLang(cmd *cli.Command) string {
	if cmd.IsSet("lang") {
		return cmd.String("lang")
	}
	if cfg, err := config.Load(); err == nil {
		return cfg.Lang
	}
	return ""
}

// controlsHelp lists the key bindings in the current language.
func controlsHelp() string {
	var b strings.Builder
	fmt.Fprintln(&b, i18n.T("Controls:"))
	fmt.Fprintf(&b, " %c | %s\n", control.KeyQuit, i18n.T("quit"))
	fmt.Fprintf(&b, " %c | %s\n", control.KeySplit, i18n.T("new split"))
	return b.String()
}

func run(cfg *config.Config, log *zap.Logger) error {
	var chime Sounder
	if cfg.Chime {
		c, err := audio.NewChime()
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			chime = c
		}
	}

	var outcome Outcome
	err := terminal.WithRawInput(os.Stdin, func(in *terminal.Input) error {
		a := NewAppManager(AppConfig{
			Out:          os.Stdout,
			In:           in,
			Clock:        timer.MonotonicClock{},
			Chime:        chime,
			Log:          log,
			TickInterval: cfg.TickInterval,
			PollInterval: cfg.PollInterval,
		})
		var err error
		outcome, err = a.Run()
		return err
	})
	if err != nil {
		return err
	}
	log.Debug("session ended", zap.Stringer("outcome", outcome))
	return nil
}
