package transform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"mqfilter/common"
	"mqfilter/config"
	"mqfilter/css"
	"mqfilter/filter"
)

// StdStream is used in place of SOURCE to read from stdin.
const StdStream = "-"

// processor keeps everything necessary to filter a single stylesheet.
type processor struct {
	log       *zap.Logger
	rpt       *config.Report
	parser    *css.Parser
	apply     filter.Func
	stats     filter.Stats
	from      common.InputFmt
	to        common.OutputFmt
	indent    string
	cp        encoding.Encoding
	overwrite bool

	// destinations written so far, watcher must not react to them
	written map[string]struct{}
	// number of stored inputs, used for report names
	stored int
}

func newProcessor(pred filter.Predicate, nested bool, log *zap.Logger) *processor {
	p := &processor{
		log:     log,
		parser:  css.NewParser(log),
		indent:  css.DefaultIndent,
		written: make(map[string]struct{}),
	}
	p.apply = filter.New(pred, filter.WithLogger(log), filter.WithStats(&p.stats), filter.WithNested(nested))
	return p
}

// detectFormat selects input format by file name extension and when
// inconclusive by the first significant byte of the data.
func detectFormat(name string, data []byte) common.InputFmt {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".css":
		return common.InputFmtCss
	case ".json":
		return common.InputFmtJson
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("{")) {
		return common.InputFmtJson
	}
	return common.InputFmtCss
}

// decoder returns reader producing UTF-8. When character set was not forced
// BOM (if present) selects UTF-16 or UTF-8.
func (p *processor) decoder(r io.Reader) io.Reader {
	if p.cp != nil {
		return transform.NewReader(r, p.cp.NewDecoder())
	}
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// transform reads stylesheet from r, filters it and writes result to w. name
// is used for format detection and logging.
func (p *processor) transform(r io.Reader, name string, w io.Writer) error {
	data, err := io.ReadAll(p.decoder(r))
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	from := p.from
	if from == common.InputFmtAuto {
		from = detectFormat(name, data)
	}

	var sheet *css.Stylesheet
	switch from {
	case common.InputFmtJson:
		if sheet, err = css.DecodeJSON(bytes.NewReader(data)); err != nil {
			return err
		}
	default:
		sheet = p.parser.Parse(data, name)
		for _, e := range sheet.Errors() {
			p.log.Warn("CSS syntax error", zap.String("source", name), zap.String("error", e))
		}
	}

	before := p.stats
	if p.rpt != nil {
		p.rpt.StoreData("tree/"+filepath.Base(name)+".before.txt", []byte(sheet.Dump()))
	}
	p.apply(sheet)
	if p.rpt != nil {
		p.rpt.StoreData("tree/"+filepath.Base(name)+".after.txt", []byte(sheet.Dump()))
	}
	p.log.Debug("Stylesheet filtered", zap.String("source", name), zap.Stringer("from", from),
		zap.Int("media", p.stats.Visited-before.Visited), zap.Int("changed", p.stats.Changed()-before.Changed()))

	switch p.to {
	case common.OutputFmtJson:
		err = sheet.EncodeJSON(w, p.indent)
	default:
		_, err = sheet.WriteIndented(w, p.indent)
	}
	if err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

// outputName builds destination file name for src in directory dst.
func (p *processor) outputName(src, dst string) string {
	base := filepath.Base(src)
	return filepath.Join(dst, strings.TrimSuffix(base, filepath.Ext(base))+p.to.Ext())
}

// processStream filters stdin to dst, empty dst means stdout.
func (p *processor) processStream(in io.Reader, dst string, stdout io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("unable to read stdin: %w", err)
	}
	p.rpt.StoreData("input/stdin", data)

	if len(dst) == 0 {
		return p.transform(bytes.NewReader(data), "stdin", stdout)
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		dst = p.outputName("stdin", dst)
	}
	return p.writeFile(dst, func(w io.Writer) error {
		return p.transform(bytes.NewReader(data), "stdin", w)
	})
}

// processFile filters single file src. dst is either target file, existing
// directory or empty for stdout.
func (p *processor) processFile(src, dst string, stdout io.Writer) error {
	p.stored++
	p.rpt.Store(fmt.Sprintf("input/%d-%s", p.stored, filepath.Base(src)), src)

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open source: %w", err)
	}
	defer f.Close()

	if len(dst) == 0 {
		return p.transform(f, src, stdout)
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		dst = p.outputName(src, dst)
	}
	p.log.Debug("Filtering file", zap.String("from", src), zap.String("to", dst))
	if err := p.writeFile(dst, func(w io.Writer) error { return p.transform(f, src, w) }); err != nil {
		return err
	}
	p.rpt.Store(fmt.Sprintf("output/%d-%s", p.stored, filepath.Base(dst)), dst)
	return nil
}

// writeFile produces destination in memory first, so failed transformation
// does not leave partial output and source could be replaced in place. Files
// written earlier by the same processor are always overwritten.
func (p *processor) writeFile(dst string, produce func(io.Writer) error) error {
	abs, err := filepath.Abs(dst)
	if err != nil {
		return fmt.Errorf("unable to resolve destination: %w", err)
	}
	_, ours := p.written[abs]

	if _, err := os.Stat(dst); err == nil {
		if !p.overwrite && !ours {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		p.log.Debug("Overwriting existing file", zap.String("file", dst))
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to check destination: %w", err)
	}

	var buf bytes.Buffer
	if err := produce(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	p.written[abs] = struct{}{}
	return nil
}

// isSource reports whether name looks like something we could process in
// directory mode.
func isSource(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".css", ".json":
		return true
	}
	return false
}

// listDir returns stylesheets in dir in natural order ("2.css" before
// "10.css"). Subdirectories are not visited.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !isSource(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(natural.StringSlice(names))

	files := make([]string, 0, len(names))
	for _, n := range names {
		files = append(files, filepath.Join(dir, n))
	}
	return files, nil
}

// processDir filters every stylesheet in dir into directory dst. Failures are
// logged and processing continues, all of them are returned at the end.
func (p *processor) processDir(ctx context.Context, dir, dst string) (err error) {
	files, err := listDir(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		p.log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}

	for _, file := range files {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}
		if er := p.processFile(file, dst, nil); er != nil {
			p.log.Error("Unable to process file", zap.String("file", file), zap.Error(er))
			err = multierr.Append(err, fmt.Errorf("%s: %w", filepath.Base(file), er))
		}
	}
	return err
}
