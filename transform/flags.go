package transform

import (
	"strings"

	cli "github.com/urfave/cli/v3"

	"mqfilter/common"
)

// FilterFlags returns flags of "filter" subcommand. Flags which are set
// override configuration values.
func FilterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "min-width", Aliases: []string{"mw"}, Usage: "apply min-width preset for viewport `WIDTH` in pixels (0 means 1200)"},
		&cli.BoolFlag{Name: "allow-wider", Usage: "keep rules requiring viewport wider than min-width"},
		&cli.BoolFlag{Name: "nested", Usage: "process media rules nested in other blocks"},
		&cli.StringFlag{Name: "from", Value: common.InputFmtAuto.String(),
			Usage: "input `TYPE` (supported types: " + strings.Join(common.InputFmtNames(), ", ") + ")"},
		&cli.StringFlag{Name: "to",
			Usage: "output `TYPE` (supported types: " + strings.Join(common.OutputFmtNames(), ", ") + ")"},
		&cli.StringFlag{Name: "charset", Usage: "decode input from `ENCODING` (see IANA.org for character set names)"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite existing destination files"},
		&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "keep running and process sources again when they change"},
	}
}

// PropsFlags returns flags of "props" subcommand.
func PropsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "camel", Usage: "convert feature names to camelCase"},
	}
}
