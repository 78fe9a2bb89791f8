package sheets

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Sentinel is the fallback value for absent string cells.
const Sentinel = "N/A"

// Kind is the semantic type of a column, driving the per-field fallback
// policy applied during normalization.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDate
	// KindCurrency accepts either a plain number or a formatted string like
	// "$1,234.56".
	KindCurrency
)

// Column maps one cell position to a named, typed field.
type Column struct {
	Index int
	Name  string
	Kind  Kind
}

// Schema is the declarative field map for one record shape. Clock supplies
// the fallback timestamp for absent or malformed dates; it defaults to
// time.Now, matching the source behavior of substituting "now" rather than a
// fixed sentinel.
type Schema struct {
	Name    string
	Columns []Column
	Clock   func() time.Time
}

// Record is one normalized row, keyed by column name. Absent values are
// already defaulted, so the accessors never fail.
type Record map[string]any

func (r Record) Str(name string) string {
	if v, ok := r[name].(string); ok {
		return v
	}
	return Sentinel
}

func (r Record) Float(name string) float64 {
	if v, ok := r[name].(float64); ok {
		return v
	}
	return 0
}

func (r Record) Int(name string) int {
	return int(r.Float(name))
}

func (r Record) Time(name string) time.Time {
	if v, ok := r[name].(time.Time); ok {
		return v
	}
	return time.Time{}
}

// Normalize converts one sparse raw row into a Record, applying the fallback
// policy per column: strings default to Sentinel, numbers to 0, dates to the
// schema clock's current time. Pure per row.
func (s Schema) Normalize(row Row) Record {
	rec := make(Record, len(s.Columns))
	for _, col := range s.Columns {
		var value any
		if col.Index < len(row.Cells) && row.Cells[col.Index] != nil {
			value = row.Cells[col.Index].Value
		}
		rec[col.Name] = s.convert(col.Kind, value)
	}
	return rec
}

func (s Schema) convert(kind Kind, value any) any {
	switch kind {
	case KindString:
		if v, ok := value.(string); ok && v != "" {
			return v
		}
		return Sentinel
	case KindNumber:
		if v, ok := value.(float64); ok {
			return v
		}
		return float64(0)
	case KindDate:
		return parseGvizDate(value, s.now())
	case KindCurrency:
		return parseCurrency(value)
	}
	return nil
}

func (s Schema) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

var gvizDateDigits = regexp.MustCompile(`\d+`)

// parseGvizDate parses the structured "Date(year,month,day)" token the gviz
// API emits for date cells. The month component is zero-indexed. Anything
// that does not carry exactly three integer components falls back to now.
func parseGvizDate(value any, now time.Time) time.Time {
	raw, ok := value.(string)
	if !ok || !strings.HasPrefix(raw, "Date(") {
		return now
	}

	parts := gvizDateDigits.FindAllString(raw, -1)
	if len(parts) != 3 {
		return now
	}

	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])

	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
}

var currencyReplacer = strings.NewReplacer("$", "", ",", "")

// parseCurrency accepts either a numeric cell or a currency-formatted string;
// any parse failure yields 0.
func parseCurrency(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(currencyReplacer.Replace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
