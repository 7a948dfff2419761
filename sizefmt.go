// Package sizefmt renders byte counts as human-readable text, e.g. "1.29 GiB",
// "36 KB", or "-512 bytes".
//
// The zero-configuration path is Size.String(). Finer control goes through
// Size.Format(), which returns a Formatter that can be reconfigured with
// chained WithBase / WithStyle calls before rendering.
package sizefmt

// Size is a byte count. Negative values are allowed and render with a leading
// minus sign.
type Size int64

// Unit steps for both bases, usable as multipliers when constructing a Size,
// e.g. 3*sizefmt.Mebibyte.
const (
	Byte Size = 1

	Kilobyte = 1000 * Byte
	Megabyte = 1000 * Kilobyte
	Gigabyte = 1000 * Megabyte
	Terabyte = 1000 * Gigabyte
	Petabyte = 1000 * Terabyte
	Exabyte  = 1000 * Petabyte

	Kibibyte = 1024 * Byte
	Mebibyte = 1024 * Kibibyte
	Gibibyte = 1024 * Mebibyte
	Tebibyte = 1024 * Gibibyte
	Pebibyte = 1024 * Tebibyte
	Exbibyte = 1024 * Pebibyte
)

// Bytes returns the size as a signed byte count.
func (s Size) Bytes() int64 {
	return int64(s)
}

// Format returns a Formatter for the size, configured with Base2 units and the
// default style.
func (s Size) Format() Formatter {
	return Formatter{
		size:  s,
		base:  Base2,
		style: StyleDefault,
	}
}

func (s Size) String() string {
	return s.Format().String()
}
