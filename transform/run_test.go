package transform

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v3"

	"mqfilter/common"
	"mqfilter/config"
)

func TestApplyFlags(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	require.NoError(t, err)
	cfg.Filter.Preset = common.PresetNone

	cmd := &cli.Command{
		Name:  "filter",
		Flags: FilterFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			return applyFlags(cmd, cfg)
		},
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"filter", "--min-width", "900", "--nested", "--to", "json", "src.css"}))

	assert.Equal(t, common.PresetMinWidth, cfg.Filter.Preset)
	assert.Equal(t, 900, cfg.Filter.Width)
	assert.True(t, cfg.Filter.Nested)
	assert.False(t, cfg.Filter.AllowWider, "flags not set must not change configuration")
	assert.Equal(t, common.OutputFmtJson, cfg.Output.Format)
}

func TestApplyFlags_BadFormat(t *testing.T) {
	cfg := &config.Config{}
	cmd := &cli.Command{
		Name:  "filter",
		Flags: FilterFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			return applyFlags(cmd, cfg)
		},
	}
	assert.Error(t, cmd.Run(context.Background(), []string{"filter", "--to", "xml"}))
}

func TestRun_Stream(t *testing.T) {
	p := newTestProcessor(t)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), p, StdStream, "", false, strings.NewReader(sampleCSS), &out))
	assertFiltered(t, out.String())

	dst := filepath.Join(t.TempDir(), "result.css")
	require.NoError(t, run(context.Background(), p, StdStream, dst, false, strings.NewReader(sampleCSS), nil))
	assertFiltered(t, readFile(t, dst))
}

func TestRun_Errors(t *testing.T) {
	p := newTestProcessor(t)
	tmpDir := t.TempDir()

	err := run(context.Background(), p, filepath.Join(tmpDir, "absent.css"), "", false, nil, nil)
	assert.ErrorContains(t, err, "not found")

	err = run(context.Background(), p, tmpDir, "", false, nil, nil)
	assert.ErrorContains(t, err, "destination directory is required")
}

func TestRun_Watch(t *testing.T) {
	tmpDir := t.TempDir()
	srcDir := filepath.Join(tmpDir, "src")
	dstDir := filepath.Join(tmpDir, "dst")
	src := filepath.Join(srcDir, "site.css")
	writeFile(t, src, sampleCSS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := newTestProcessor(t)
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, p, srcDir, dstDir, true, nil, nil)
	}()

	out := filepath.Join(dstDir, "site.css")
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && strings.Contains(string(data), "c {")
	}, 5*time.Second, 20*time.Millisecond, "initial run must produce output")

	// give watcher a chance to start before changing the source
	time.Sleep(200 * time.Millisecond)
	writeFile(t, src, "@media (min-width: 10px){changed{color:red}}")

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && strings.Contains(string(data), "changed {")
	}, 5*time.Second, 20*time.Millisecond, "changed source must be processed again")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}

func TestWriteProps(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeProps(&out, []string{
		"(min-width: 1000px) and (max-width: 2000px)",
		"print",
	}, true))
	assert.Equal(t, `{"minWidth":"1000px","maxWidth":"2000px"}`+"\n{}\n", out.String())
}
