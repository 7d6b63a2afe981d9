package recordstore

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Typed filter expressions, compiled to the record store's string predicate
// syntax at the wire boundary. Callers never concatenate user input into a
// filter string; every value goes through renderValue, which quotes and
// escapes it.

type Filter interface {
	appendTo(b *strings.Builder)
}

type comparison struct {
	field string
	op    string
	value any
}

func (c comparison) appendTo(b *strings.Builder) {
	b.WriteString(c.field)
	b.WriteString(" ")
	b.WriteString(c.op)
	b.WriteString(" ")
	b.WriteString(renderValue(c.value))
}

type group struct {
	op    string // "&&" or "||"
	exprs []Filter
}

func (g group) appendTo(b *strings.Builder) {
	if len(g.exprs) == 1 {
		g.exprs[0].appendTo(b)
		return
	}
	b.WriteString("(")
	for i, e := range g.exprs {
		if i > 0 {
			b.WriteString(" ")
			b.WriteString(g.op)
			b.WriteString(" ")
		}
		e.appendTo(b)
	}
	b.WriteString(")")
}

func Eq(field string, value any) Filter   { return comparison{field, "=", value} }
func Ne(field string, value any) Filter   { return comparison{field, "!=", value} }
func Gt(field string, value any) Filter   { return comparison{field, ">", value} }
func Ge(field string, value any) Filter   { return comparison{field, ">=", value} }
func Lt(field string, value any) Filter   { return comparison{field, "<", value} }
func Le(field string, value any) Filter   { return comparison{field, "<=", value} }
func Like(field string, value any) Filter { return comparison{field, "~", value} }

func And(exprs ...Filter) Filter { return group{op: "&&", exprs: exprs} }
func Or(exprs ...Filter) Filter  { return group{op: "||", exprs: exprs} }

// In expands to an OR of equality checks; the store has no native IN.
func In(field string, values ...string) Filter {
	exprs := make([]Filter, len(values))
	for i, v := range values {
		exprs[i] = Eq(field, v)
	}
	return group{op: "||", exprs: exprs}
}

func Compile(f Filter) string {
	if f == nil {
		return ""
	}
	var b strings.Builder
	f.appendTo(&b)
	return b.String()
}

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		// store-native datetime literal, always UTC
		return quote(val.UTC().Format("2006-01-02 15:04:05.000Z"))
	case fmt.Stringer:
		return quote(val.String())
	case string:
		return quote(val)
	default:
		return quote(fmt.Sprintf("%v", val))
	}
}

func quote(s string) string {
	var b strings.Builder
	b.WriteString(`"`)
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(`"`)
	return b.String()
}
