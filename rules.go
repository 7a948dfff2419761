package sizefmt

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// formatRule governs byte counts below lessThan and above the previous rule's
// lessThan. The magnitude is divided by step and rendered with prec decimal
// places; a step of 1 renders the raw integer count.
type formatRule struct {
	lessThan uint64
	step     uint64
	prec     int
	unit     unit
}

func (r formatRule) renderMagnitude(sb *strings.Builder, bytes uint64) {
	if r.step == 1 {
		sb.WriteString(strconv.FormatUint(bytes, 10))
		return
	}

	sb.WriteString(strconv.FormatFloat(float64(bytes)/float64(r.step), 'f', r.prec, 64))
}

// Each tier starts at 2 decimal places, drops to 1 at 10x the unit step and to
// 0 at 100x, then promotes to the next unit. The byte tier is always a whole
// number and the exa/exbi tier is the ceiling, whole numbers with no further
// promotion.
var base10Rules = [17]formatRule{
	{lessThan: uint64(Kilobyte), step: 1, prec: 0, unit: unitByte},
	{lessThan: uint64(10 * Kilobyte), step: uint64(Kilobyte), prec: 2, unit: unitKilobyte},
	{lessThan: uint64(100 * Kilobyte), step: uint64(Kilobyte), prec: 1, unit: unitKilobyte},
	{lessThan: uint64(Megabyte), step: uint64(Kilobyte), prec: 0, unit: unitKilobyte},
	{lessThan: uint64(10 * Megabyte), step: uint64(Megabyte), prec: 2, unit: unitMegabyte},
	{lessThan: uint64(100 * Megabyte), step: uint64(Megabyte), prec: 1, unit: unitMegabyte},
	{lessThan: uint64(Gigabyte), step: uint64(Megabyte), prec: 0, unit: unitMegabyte},
	{lessThan: uint64(10 * Gigabyte), step: uint64(Gigabyte), prec: 2, unit: unitGigabyte},
	{lessThan: uint64(100 * Gigabyte), step: uint64(Gigabyte), prec: 1, unit: unitGigabyte},
	{lessThan: uint64(Terabyte), step: uint64(Gigabyte), prec: 0, unit: unitGigabyte},
	{lessThan: uint64(10 * Terabyte), step: uint64(Terabyte), prec: 2, unit: unitTerabyte},
	{lessThan: uint64(100 * Terabyte), step: uint64(Terabyte), prec: 1, unit: unitTerabyte},
	{lessThan: uint64(Petabyte), step: uint64(Terabyte), prec: 0, unit: unitTerabyte},
	{lessThan: uint64(10 * Petabyte), step: uint64(Petabyte), prec: 2, unit: unitPetabyte},
	{lessThan: uint64(100 * Petabyte), step: uint64(Petabyte), prec: 1, unit: unitPetabyte},
	{lessThan: uint64(Exabyte), step: uint64(Petabyte), prec: 0, unit: unitPetabyte},
	{lessThan: math.MaxUint64, step: uint64(Exabyte), prec: 0, unit: unitExabyte},
}

var base2Rules = [17]formatRule{
	{lessThan: uint64(Kibibyte), step: 1, prec: 0, unit: unitByte},
	{lessThan: uint64(10 * Kibibyte), step: uint64(Kibibyte), prec: 2, unit: unitKibibyte},
	{lessThan: uint64(100 * Kibibyte), step: uint64(Kibibyte), prec: 1, unit: unitKibibyte},
	{lessThan: uint64(Mebibyte), step: uint64(Kibibyte), prec: 0, unit: unitKibibyte},
	{lessThan: uint64(10 * Mebibyte), step: uint64(Mebibyte), prec: 2, unit: unitMebibyte},
	{lessThan: uint64(100 * Mebibyte), step: uint64(Mebibyte), prec: 1, unit: unitMebibyte},
	{lessThan: uint64(Gibibyte), step: uint64(Mebibyte), prec: 0, unit: unitMebibyte},
	{lessThan: uint64(10 * Gibibyte), step: uint64(Gibibyte), prec: 2, unit: unitGibibyte},
	{lessThan: uint64(100 * Gibibyte), step: uint64(Gibibyte), prec: 1, unit: unitGibibyte},
	{lessThan: uint64(Tebibyte), step: uint64(Gibibyte), prec: 0, unit: unitGibibyte},
	{lessThan: uint64(10 * Tebibyte), step: uint64(Tebibyte), prec: 2, unit: unitTebibyte},
	{lessThan: uint64(100 * Tebibyte), step: uint64(Tebibyte), prec: 1, unit: unitTebibyte},
	{lessThan: uint64(Pebibyte), step: uint64(Tebibyte), prec: 0, unit: unitTebibyte},
	{lessThan: uint64(10 * Pebibyte), step: uint64(Pebibyte), prec: 2, unit: unitPebibyte},
	{lessThan: uint64(100 * Pebibyte), step: uint64(Pebibyte), prec: 1, unit: unitPebibyte},
	{lessThan: uint64(Exbibyte), step: uint64(Pebibyte), prec: 0, unit: unitPebibyte},
	{lessThan: math.MaxUint64, step: uint64(Exbibyte), prec: 0, unit: unitExbibyte},
}

// lookupRule finds the first rule whose threshold strictly exceeds bytes, so a
// count sitting exactly on a threshold is governed by the next bracket. The
// caller never passes a magnitude above MaxInt64, which keeps the search below
// the final MaxUint64 catch-all.
func lookupRule(bytes uint64, base Base) formatRule {
	rules := &base2Rules
	if base == Base10 {
		rules = &base10Rules
	}

	idx := sort.Search(len(rules), func(i int) bool {
		return bytes < rules[i].lessThan
	})

	return rules[idx]
}
