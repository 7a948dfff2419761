package sysstats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fudanchii/sizefmt"
	"github.com/fudanchii/sizefmt/internal/sysstats"
)

var snap = &sysstats.Snapshot{
	Total:     16 * 1024 * 1024 * 1024,
	Available: 12 * 1024 * 1024 * 1024,
	Cached:    3 * 1024 * 1024 * 1024,
	Active:    2 * 1024 * 1024 * 1024,
	Inactive:  1024 * 1024 * 1024,
	Free:      512 * 1024 * 1024,
	Uptime:    26*time.Hour + 3*time.Minute + 7*time.Second,
}

func TestRendererLine(t *testing.T) {
	r := sysstats.Renderer{Base: sizefmt.Base2, Style: sizefmt.StyleAbbreviated}

	expected := "mem.total:16.0 GiB, mem.avail:12.0 GiB, mem.cached:3.00 GiB, " +
		"mem.act:2.00 GiB, mem.inact:1.00 GiB, mem.free:512 MiB, up:1d2h3m7s"

	assert.Equal(t, expected, r.Line(snap))
}

func TestRendererDetail(t *testing.T) {
	r := sysstats.Renderer{Base: sizefmt.Base10, Style: sizefmt.StyleAbbreviated}

	lines := r.Detail(snap)
	require.Len(t, lines, 7)

	assert.Contains(t, lines[0], "total")
	assert.Contains(t, lines[0], "17.2 GB")
	assert.Contains(t, lines[0], "(17,179,869,184 bytes)")
	assert.Contains(t, lines[5], "537 MB")
	assert.Contains(t, lines[6], "uptime")
	assert.Contains(t, lines[6], "1d2h3m7s")
}

func TestFormatUptime(t *testing.T) {
	tests := map[time.Duration]string{
		0:                               "0s",
		450 * time.Millisecond:          "0s",
		59 * time.Second:                "59s",
		time.Minute:                     "1m",
		61 * time.Second:                "1m1s",
		2 * time.Hour:                   "2h",
		49*time.Hour + 30*time.Second:   "2d1h30s",
		72*time.Hour + 59*time.Minute:   "3d59m",
		25*time.Hour + 61*time.Second:   "1d1h1m1s",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, sysstats.FormatUptime(in), "duration %s", in)
	}
}
