// Package sysstats collects host memory and uptime figures and renders them
// through sizefmt.
package sysstats

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mackerelio/go-osstat/memory"
	"github.com/mackerelio/go-osstat/uptime"

	"github.com/fudanchii/sizefmt"
)

// Snapshot is a point-in-time view of the host's memory usage and uptime.
// All memory figures are byte counts.
type Snapshot struct {
	Total     uint64
	Available uint64
	Cached    uint64
	Active    uint64
	Inactive  uint64
	Free      uint64
	Uptime    time.Duration
}

func Collect() (*Snapshot, error) {
	memStats, err := memory.Get()
	if err != nil {
		return nil, fmt.Errorf("sysstats: memory: %w", err)
	}

	up, err := uptime.Get()
	if err != nil {
		return nil, fmt.Errorf("sysstats: uptime: %w", err)
	}

	return &Snapshot{
		Total:     memStats.Total,
		Available: memStats.Available,
		Cached:    memStats.Cached,
		Active:    memStats.Active,
		Inactive:  memStats.Inactive,
		Free:      memStats.Free,
		Uptime:    up,
	}, nil
}

// Renderer formats snapshots with a fixed unit base and style.
type Renderer struct {
	Base  sizefmt.Base
	Style sizefmt.Style
}

// Line renders the compact single-line view used by watch mode.
func (r Renderer) Line(snap *Snapshot) string {
	return fmt.Sprintf("mem.total:%s, mem.avail:%s, mem.cached:%s, mem.act:%s, mem.inact:%s, mem.free:%s, up:%s",
		r.size(snap.Total),
		r.size(snap.Available),
		r.size(snap.Cached),
		r.size(snap.Active),
		r.size(snap.Inactive),
		r.size(snap.Free),
		FormatUptime(snap.Uptime))
}

// Detail renders one line per figure, pairing the human-readable size with the
// exact comma-grouped byte count.
func (r Renderer) Detail(snap *Snapshot) []string {
	rows := []struct {
		label string
		value uint64
	}{
		{"total", snap.Total},
		{"available", snap.Available},
		{"cached", snap.Cached},
		{"active", snap.Active},
		{"inactive", snap.Inactive},
		{"free", snap.Free},
	}

	lines := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-10s %12s  (%s bytes)",
			row.label, r.size(row.value), humanize.Comma(int64(row.value))))
	}

	return append(lines, fmt.Sprintf("%-10s %s", "uptime", FormatUptime(snap.Uptime)))
}

func (r Renderer) size(n uint64) string {
	return sizefmt.Size(n).Format().WithBase(r.Base).WithStyle(r.Style).String()
}
