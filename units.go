package sizefmt

import "strings"

type unit int

const (
	unitByte unit = iota
	unitKilobyte
	unitMegabyte
	unitGigabyte
	unitTerabyte
	unitPetabyte
	unitExabyte
	unitKibibyte
	unitMebibyte
	unitGibibyte
	unitTebibyte
	unitPebibyte
	unitExbibyte
)

// Spellings per unit: full lowercase, full capitalized, abbreviated lowercase,
// abbreviated.
var unitText = [...][4]string{
	unitByte: {"byte", "Byte", "b", "B"},

	unitKilobyte: {"kilobyte", "Kilobyte", "kb", "KB"},
	unitMegabyte: {"megabyte", "Megabyte", "mb", "MB"},
	unitGigabyte: {"gigabyte", "Gigabyte", "gb", "GB"},
	unitTerabyte: {"terabyte", "Terabyte", "tb", "TB"},
	unitPetabyte: {"petabyte", "Petabyte", "pb", "PB"},
	unitExabyte:  {"exabyte", "Exabyte", "eb", "EB"},

	unitKibibyte: {"kibibyte", "Kibibyte", "kib", "KiB"},
	unitMebibyte: {"mebibyte", "Mebibyte", "mib", "MiB"},
	unitGibibyte: {"gibibyte", "Gibibyte", "gib", "GiB"},
	unitTebibyte: {"tebibyte", "Tebibyte", "tib", "TiB"},
	unitPebibyte: {"pebibyte", "Pebibyte", "pib", "PiB"},
	unitExbibyte: {"exbibyte", "Exbibyte", "eib", "EiB"},
}

// render appends a space and the unit text to sb. Full spellings pluralize
// unless the raw byte count is exactly 1; abbreviations never pluralize.
func (u unit) render(sb *strings.Builder, bytes uint64, style Style) {
	if style == StyleDefault {
		if u == unitByte {
			style = StyleFullLowercase
		} else {
			style = StyleAbbreviated
		}
	}

	sb.WriteByte(' ')

	text := unitText[u]

	switch style {
	case StyleFullLowercase, StyleFull:
		if style == StyleFull {
			sb.WriteString(text[1])
		} else {
			sb.WriteString(text[0])
		}

		if bytes != 1 {
			sb.WriteByte('s')
		}
	case StyleAbbreviatedLowercase:
		sb.WriteString(text[2])
	default:
		sb.WriteString(text[3])
	}
}
