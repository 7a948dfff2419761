package sizefmt

import (
	"io"
	"math"
	"strings"
)

// Base selects whether successive units scale by 1024 or by 1000.
type Base int

const (
	// Base2 uses units like "kibibyte" and "mebibyte" ("KiB", "MiB"), each
	// 1024 times greater than the previous one.
	Base2 Base = iota
	// Base10 uses units like "kilobyte" and "megabyte" ("KB", "MB"), each
	// 1000 times greater than the previous one.
	Base10
)

// Style selects how the unit accompanying the formatted size is spelled.
type Style int

const (
	// StyleDefault spells bytes out in full lowercase and abbreviates every
	// other unit, e.g. "1024 bytes" and "1.29 GiB".
	StyleDefault Style = iota
	// StyleAbbreviated, e.g. "1024 KB" and "1.29 GiB".
	StyleAbbreviated
	// StyleAbbreviatedLowercase, e.g. "1024 kb" and "1.29 gib".
	StyleAbbreviatedLowercase
	// StyleFull, e.g. "1024 Kilobytes" and "1.29 Gibibytes".
	StyleFull
	// StyleFullLowercase, e.g. "1024 kilobytes" and "1.29 gibibytes".
	StyleFullLowercase
)

// Formatter renders a Size as human-readable text. It is a plain value;
// WithBase and WithStyle return modified copies, so a Formatter can be shared
// and reconfigured freely:
//
//	sizefmt.Size(1536).Format().WithBase(sizefmt.Base10).WithStyle(sizefmt.StyleFull).String()
type Formatter struct {
	size  Size
	base  Base
	style Style
}

// WithBase returns a copy of the formatter using the given unit base.
func (f Formatter) WithBase(base Base) Formatter {
	f.base = base
	return f
}

// WithStyle returns a copy of the formatter using the given unit style.
func (f Formatter) WithStyle(style Style) Formatter {
	f.style = style
	return f
}

// String renders the size as "[-]<number> <unit>". Negative sizes format
// their absolute magnitude behind a minus sign; the one magnitude with no
// positive int64 counterpart, math.MinInt64, is approximated by math.MaxInt64
// rather than treated as an error.
func (f Formatter) String() string {
	var sb strings.Builder

	bytes := f.size.Bytes()

	magnitude := uint64(bytes)
	if bytes < 0 {
		sb.WriteByte('-')

		if bytes == math.MinInt64 {
			magnitude = math.MaxInt64
		} else {
			magnitude = uint64(-bytes)
		}
	}

	rule := lookupRule(magnitude, f.base)
	rule.renderMagnitude(&sb, magnitude)
	rule.unit.render(&sb, magnitude, f.style)

	return sb.String()
}

// WriteTo writes the rendered text to w.
func (f Formatter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}
