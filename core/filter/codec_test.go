// Package filter - Codec round-trip tests
package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"voicedash/core/types"
)

func TestEncodeDefaultsIsEmpty(t *testing.T) {
	f := Defaults(testDefaults, testToday)
	if got := Encode(f, testDefaults, testToday); got != "" {
		t.Errorf("Encode(defaults) = %q, want empty string", got)
	}
}

func TestRoundTrip(t *testing.T) {
	rawInputs := []map[string][]string{
		{},
		{"from": {"2026-04-01"}, "to": {"2026-04-30"}},
		{"client": {"e2a6c9de-1b2f-4b8a-9c3d-0f1e2d3c4b5a"}},
		{"clients": {"b2c3d4e5-0000-4000-8000-000000000002,a1b2c3d4-0000-4000-8000-000000000001"}},
		{"type": {"outbound"}, "agent": {"dep-42"}},
		{"outcomes": {"voicemail,answered"}, "emotion": {"negative"}},
		{"p": {"7"}, "size": {"50"}},
		{"sort": {"cost"}, "dir": {"asc"}},
		{"q": {"acme"}},
		{
			"from": {"2026-05-01"}, "to": {"2026-05-15"},
			"clients": {"a,b"}, "type": {"inbound"},
			"outcomes": {"busy,failed"}, "emotion": {"positive"},
			"p": {"3"}, "size": {"10"}, "sort": {"calls"}, "dir": {"asc"},
			"q": {"search term"},
		},
	}

	for _, raw := range rawInputs {
		f := Normalize(raw, testDefaults, testToday)
		encoded := Encode(f, testDefaults, testToday)
		decoded := Decode(encoded, testDefaults, testToday)
		if diff := cmp.Diff(f, decoded); diff != "" {
			t.Errorf("round trip mismatch for %v (encoded %q):\n%s", raw, encoded, diff)
		}
	}
}

func TestDecodeAcceptsLeadingQuestionMark(t *testing.T) {
	a := Decode("?p=2", testDefaults, testToday)
	b := Decode("p=2", testDefaults, testToday)
	assert.Equal(t, a, b)
	assert.Equal(t, 2, a.Page.Page)
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	f := Decode("utm_source=newsletter&wat=1&p=2", testDefaults, testToday)
	def := Defaults(testDefaults, testToday)

	assert.Equal(t, 2, f.Page.Page)
	f.Page.Page = 1
	assert.Equal(t, def, f, "unknown keys must not leak into the state")
}

func TestDecodeOrderAlias(t *testing.T) {
	f := Decode("order=asc", testDefaults, testToday)
	assert.Equal(t, types.SortAsc, f.Sort.Direction)

	// dir wins when both are present
	f = Decode("dir=desc&order=asc", testDefaults, testToday)
	assert.Equal(t, types.SortDesc, f.Sort.Direction)
}

func TestDecodeSortInjectionFallsBack(t *testing.T) {
	f := Decode("sort=%3B+DROP+TABLE", testDefaults, testToday)
	assert.Equal(t, "date", f.Sort.Column)
}

func TestDecodeMalformedQueryDegrades(t *testing.T) {
	// %zz is an invalid escape; the decode must still produce a usable state
	f := Decode("q=%zz&p=3", testDefaults, testToday)
	def := Defaults(testDefaults, testToday)
	assert.Equal(t, def.Range, f.Range)
	assert.GreaterOrEqual(t, f.Page.Page, 1)
}

func TestEncodeIsDeterministic(t *testing.T) {
	raw := map[string][]string{
		"q": {"acme"}, "p": {"4"}, "type": {"inbound"}, "clients": {"b,a"},
	}
	f := Normalize(raw, testDefaults, testToday)
	first := Encode(f, testDefaults, testToday)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Encode(f, testDefaults, testToday))
	}
}

func TestEncodeOmitsDefaultFieldsOnly(t *testing.T) {
	raw := map[string][]string{"p": {"2"}}
	f := Normalize(raw, testDefaults, testToday)
	assert.Equal(t, "p=2", Encode(f, testDefaults, testToday))
}

func TestEncodeEmitsBothRangeBounds(t *testing.T) {
	raw := map[string][]string{"from": {"2026-05-01"}}
	f := Normalize(raw, testDefaults, testToday)
	encoded := Encode(f, testDefaults, testToday)
	assert.Contains(t, encoded, "from=2026-05-01")
	assert.Contains(t, encoded, "to="+testToday.String())
}
