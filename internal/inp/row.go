package inp

import (
	"regexp"
	"strconv"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// numberRE is the numeric field grammar: integer or floating point,
// optional sign and exponent. Thousands separators are not accepted.
var numberRE = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// CoerceValue converts a raw field to a numeric value when it matches
// the numeric grammar, otherwise keeps it as text.
func CoerceValue(field string) domain.Value {
	if numberRE.MatchString(field) {
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return domain.NumberValue(f)
		}
	}
	return domain.TextValue(field)
}

// ParseNumber parses a field that must be numeric. "n/a" is a missing
// value; anything else non-numeric fails.
func ParseNumber(field string) (domain.Value, bool) {
	if field == "n/a" || field == "N/A" {
		return domain.Value{}, true
	}
	if !numberRE.MatchString(field) {
		return domain.Value{}, false
	}
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return domain.Value{}, false
	}
	return domain.NumberValue(f), true
}

// ParseRow zips one raw data line against the column set, splitting by
// the same delimiter the header used. A field count differing from
// the column count is a row-shape mismatch and returns ok == false;
// the caller skips and counts the row.
func ParseRow(cols []domain.ColumnDescriptor, delim Delimiter, line string) (domain.Record, bool) {
	fields := delim.Split(line)
	if len(fields) != len(cols) {
		return nil, false
	}

	rec := make(domain.Record, len(cols))
	for i, f := range fields {
		rec[cols[i].Key()] = CoerceValue(f)
	}
	return rec, true
}
