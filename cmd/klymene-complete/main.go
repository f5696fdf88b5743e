// Command klymene-complete prints a bash completion script for an application.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/klymene/klymene/completion"
	"github.com/klymene/klymene/config"
	"github.com/klymene/klymene/internal/parse"
	"github.com/klymene/klymene/internal/util"
	urfavecli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger, level, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newApp(os.Stdout, logger, level).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.Encoding = "console"
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// stdout carries the script
	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, level, nil
}

func newApp(out io.Writer, logger *zap.Logger, level zap.AtomicLevel) *urfavecli.App {
	return &urfavecli.App{
		Name:      "klymene-complete",
		Usage:     "Generate a bash completion script",
		UsageText: "klymene-complete --app NAME [--action ACTION | --option OPTION | --kind KIND] [--words WORDS]",
		Writer:    out,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{Name: "app", Aliases: []string{"a"}, Usage: "application `NAME` the script completes"},
			&urfavecli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "completion `KIND` (option, action, command, function, glob, affix, word-list, filter)"},
			&urfavecli.StringFlag{Name: "action", Usage: "bash completion `ACTION` such as directory or -d"},
			&urfavecli.StringFlag{Name: "option", Usage: "compopt `OPTION` such as nospace"},
			&urfavecli.StringFlag{Name: "words", Aliases: []string{"w"}, Usage: "shell-quoted `WORDS` to complete"},
			&urfavecli.IntFlag{Name: "cursor", Usage: "`INDEX` of the word under the cursor"},
			&urfavecli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "descriptor `FILE` (.yaml, .yml or .toml)"},
			&urfavecli.BoolFlag{Name: "register", Usage: "append the complete -F line binding the function to the application"},
			&urfavecli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging on stderr"},
		},
		Commands: []*urfavecli.Command{
			actionsCommand(),
		},
		Before: func(c *urfavecli.Context) error {
			if c.Bool("verbose") {
				level.SetLevel(zap.DebugLevel)
			}
			return nil
		},
		Action: func(c *urfavecli.Context) error {
			return generate(c, logger)
		},
	}
}

func generate(c *urfavecli.Context, logger *zap.Logger) error {
	f := &config.File{}
	if path := c.String("config"); path != "" {
		loaded, err := config.NewLoader(logger).LoadFromFile(path)
		if err != nil {
			return err
		}
		f = loaded
	}

	if err := applyFlags(c, f); err != nil {
		return err
	}

	b, err := f.Builder()
	if err != nil {
		return err
	}

	script := b.Render()
	if c.Bool("register") {
		script += completion.RegisterLine(b.AppName()) + "\n"
	}

	if file, ok := c.App.Writer.(*os.File); ok && util.IsTerminal(file) {
		logger.Debug("writing completion script to a terminal, redirect it to a file to install it")
	}
	logger.Debug("generated completion script",
		zap.String("app", b.AppName()),
		zap.Stringer("kind", b.Descriptor().Kind()),
		zap.String("function", completion.FunctionName(b.AppName())))

	_, err = io.WriteString(c.App.Writer, script)
	return err
}

// applyFlags overrides descriptor fields with the flags given on the command line
func applyFlags(c *urfavecli.Context, f *config.File) error {
	if c.IsSet("app") {
		f.App = c.String("app")
	}
	if c.IsSet("kind") {
		f.Kind = c.String("kind")
	}
	if c.IsSet("action") {
		f.Action = c.String("action")
	}
	if c.IsSet("option") {
		f.Option = c.String("option")
	}
	if c.IsSet("words") {
		words, err := parse.Split(c.String("words"))
		if err != nil {
			return err
		}
		f.Words = words
	}
	if c.IsSet("cursor") {
		f.Cursor = c.Int("cursor")
	}
	return nil
}

func actionsCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "actions",
		Usage: "List the bash completion actions and their tokens",
		Action: func(c *urfavecli.Context) error {
			for _, a := range completion.Actions() {
				if _, err := fmt.Fprintf(c.App.Writer, "%s\t%s\n", a.Name(), a); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
