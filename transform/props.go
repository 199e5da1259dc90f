package transform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"mqfilter/mediaquery"
	"mqfilter/state"
)

// Props is the action of "props" subcommand.
func Props(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	conds := cmd.Args().Slice()
	if len(conds) == 0 {
		return errors.New("no media condition has been specified")
	}
	env.Log.Debug("Parsing media conditions", zap.Int("count", len(conds)), zap.Bool("camel", cmd.Bool("camel")))

	return writeProps(os.Stdout, conds, cmd.Bool("camel"))
}

// writeProps prints property map of every condition as a JSON object, one per
// line.
func writeProps(w io.Writer, conds []string, camelCase bool) error {
	for _, cond := range conds {
		data, err := json.Marshal(mediaquery.Parse(cond, camelCase))
		if err != nil {
			return fmt.Errorf("unable to encode properties of %q: %w", cond, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("unable to write properties: %w", err)
		}
	}
	return nil
}
