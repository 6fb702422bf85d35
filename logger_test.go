package gradient

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	g := mustNew(t, Descriptor{
		Colors:    []Color4f{RGB(0.123, 0.456, 0.789), RGB(0, 0, 0), RGB(1, 1, 1)},
		Positions: []float32{0, 0.111, 1},
	})
	g.LookupTable(nil, gputypes.TextureFormatRGBA8Unorm)

	if !strings.Contains(buf.String(), "gradient table built") {
		t.Errorf("expected a cache build record, got: %q", buf.String())
	}
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	SetLogger(nil)
	if slogger().Enabled(nil, slog.LevelError) {
		t.Error("nop logger reports Enabled")
	}
}
