// Package transform implements program subcommands working on stylesheets.
package transform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"mqfilter/common"
	"mqfilter/config"
	"mqfilter/preset"
	"mqfilter/state"
)

// applyFlags superimposes command line flags on top of loaded configuration.
func applyFlags(cmd *cli.Command, cfg *config.Config) error {
	if cmd.IsSet("min-width") {
		cfg.Filter.Preset = common.PresetMinWidth
		cfg.Filter.Width = int(cmd.Int("min-width"))
		if cfg.Filter.Width < 0 {
			return fmt.Errorf("width must not be negative: %d", cfg.Filter.Width)
		}
	}
	if cmd.IsSet("allow-wider") {
		cfg.Filter.AllowWider = cmd.Bool("allow-wider")
	}
	if cmd.IsSet("nested") {
		cfg.Filter.Nested = cmd.Bool("nested")
	}
	if cmd.IsSet("to") {
		format, err := common.ParseOutputFmt(cmd.String("to"))
		if err != nil {
			return fmt.Errorf("unknown output format requested: %w", err)
		}
		cfg.Output.Format = format
	}
	return nil
}

// Run is the action of "filter" subcommand.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("transform")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if err := applyFlags(cmd, env.Cfg); err != nil {
		return err
	}
	from, err := common.ParseInputFmt(cmd.String("from"))
	if err != nil {
		return fmt.Errorf("unknown input format requested: %w", err)
	}

	env.Overwrite = cmd.Bool("overwrite")
	if cp := cmd.String("charset"); len(cp) > 0 {
		if err := env.SetCodePage(cp); err != nil {
			return err
		}
		log.Debug("Decoding input from specified character set", zap.String("charset", env.CodePageName()))
	}

	pred, err := preset.FromConfig(&env.Cfg.Filter)
	if err != nil {
		return fmt.Errorf("unable to prepare filter: %w", err)
	}

	p := newProcessor(pred, env.Cfg.Filter.Nested, log)
	p.rpt = env.Rpt
	p.from = from
	p.to = env.Cfg.Output.Format
	p.indent = env.Cfg.Output.Indent
	p.cp = env.CodePage
	p.overwrite = env.Overwrite

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst),
		zap.Stringer("preset", env.Cfg.Filter.Preset), zap.Stringer("format", p.to))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)),
			zap.Int("media", p.stats.Visited), zap.Int("removed", p.stats.Removed),
			zap.Int("flattened", p.stats.Flattened), zap.Int("replaced", p.stats.Replaced))
	}(time.Now())

	return run(ctx, p, src, dst, cmd.Bool("watch"), os.Stdin, os.Stdout)
}

// run handles the core logic independently of CLI framework.
func run(ctx context.Context, p *processor, src, dst string, watch bool, stdin io.Reader, stdout io.Writer) (err error) {
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}

	if src == StdStream {
		if watch {
			p.log.Warn("Unable to watch standard input, ignoring")
		}
		return p.processStream(stdin, dst, stdout)
	}

	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	dir := fi.IsDir()
	switch {
	case dir:
		if len(dst) == 0 {
			return errors.New("destination directory is required when source is a directory")
		}
		if err := p.processDir(ctx, src, dst); err != nil {
			if !watch {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			p.log.Error("Unable to process directory", zap.Error(err))
		}
	case fi.Mode().IsRegular():
		if err := p.processFile(src, dst, stdout); err != nil {
			if !watch {
				return fmt.Errorf("unable to process file: %w", err)
			}
			p.log.Error("Unable to process file", zap.String("file", src), zap.Error(err))
		}
	default:
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	if !watch {
		return nil
	}
	return p.watch(ctx, src, dir, dst, stdout)
}
