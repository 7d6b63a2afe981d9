//go:build unit

package recordstore_test

import (
	"testing"
	"time"

	"lounge-engine/internal/infra/recordstore"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	cases := []struct {
		name   string
		filter recordstore.Filter
		want   string
	}{
		{
			name:   "equality",
			filter: recordstore.Eq("branch_id", "b1"),
			want:   `branch_id = "b1"`,
		},
		{
			name:   "and of comparisons",
			filter: recordstore.And(recordstore.Eq("branch_id", "b1"), recordstore.Eq("type", "device")),
			want:   `(branch_id = "b1" && type = "device")`,
		},
		{
			name: "or inside and",
			filter: recordstore.And(
				recordstore.Eq("branch_id", "b1"),
				recordstore.Or(recordstore.Eq("status", "occupied"), recordstore.Eq("status", "booked")),
			),
			want: `(branch_id = "b1" && (status = "occupied" || status = "booked"))`,
		},
		{
			name:   "in expands to or",
			filter: recordstore.In("status", "active", "extended"),
			want:   `(status = "active" || status = "extended")`,
		},
		{
			name:   "single-element group drops parentheses",
			filter: recordstore.And(recordstore.Eq("phone", "12345")),
			want:   `phone = "12345"`,
		},
		{
			name:   "numbers unquoted",
			filter: recordstore.Ge("no_of_players", 2),
			want:   `no_of_players >= 2`,
		},
		{
			name:   "datetime rendered UTC",
			filter: recordstore.Ge("created", time.Date(2025, 3, 1, 12, 30, 0, 0, time.FixedZone("IST", 19800))),
			want:   `created >= "2025-03-01 07:00:00.000Z"`,
		},
		{
			name:   "not-equal",
			filter: recordstore.Ne("status", "closed"),
			want:   `status != "closed"`,
		},
		{
			name:   "like",
			filter: recordstore.Like("name", "PS5"),
			want:   `name ~ "PS5"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, recordstore.Compile(tc.filter))
		})
	}
}

func TestCompileEscapesHostileValues(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "embedded quote cannot break out",
			value: `" || status != "`,
			want:  `phone = "\" || status != \""`,
		},
		{
			name:  "backslash escaped",
			value: `a\b`,
			want:  `phone = "a\\b"`,
		},
		{
			name:  "newline escaped",
			value: "a\nb",
			want:  `phone = "a\nb"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, recordstore.Compile(recordstore.Eq("phone", tc.value)))
		})
	}
}

func TestCompileNil(t *testing.T) {
	assert.Equal(t, "", recordstore.Compile(nil))
}
