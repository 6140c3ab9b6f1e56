package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want []string
	}{
		{
			name: "nil raw",
			raw:  nil,
			want: []string{},
		},
		{
			name: "empty string",
			raw:  strPtr(""),
			want: []string{},
		},
		{
			name: "valid list",
			raw:  strPtr(`["sicilian","italian"]`),
			want: []string{"sicilian", "italian"},
		},
		{
			name: "empty array",
			raw:  strPtr(`[]`),
			want: []string{},
		},
		{
			name: "malformed json fails open",
			raw:  strPtr(`["sicilian",`),
			want: []string{},
		},
		{
			name: "wrong json type fails open",
			raw:  strPtr(`{"a":1}`),
			want: []string{},
		},
		{
			name: "json null fails open",
			raw:  strPtr(`null`),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				got := Decode(tt.raw)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	lists := [][]string{
		{},
		{"sicilian"},
		{"sicilian", "italian", "ruy-lopez"},
		{"with \"quotes\"", "with,comma"},
	}

	for _, list := range lists {
		encoded, err := Encode(list)
		assert.NoError(t, err)
		assert.Equal(t, list, Decode(&encoded))
	}
}

func TestAdd(t *testing.T) {
	t.Run("appends to empty favorites", func(t *testing.T) {
		encoded, list, err := Add(nil, "sicilian")
		assert.NoError(t, err)
		assert.Equal(t, []string{"sicilian"}, list)
		assert.Equal(t, `["sicilian"]`, encoded)
	})

	t.Run("preserves existing order", func(t *testing.T) {
		raw := strPtr(`["sicilian","italian"]`)
		_, list, err := Add(raw, "ruy-lopez")
		assert.NoError(t, err)
		assert.Equal(t, []string{"sicilian", "italian", "ruy-lopez"}, list)
	})

	t.Run("idempotent", func(t *testing.T) {
		encoded, list, err := Add(nil, "sicilian")
		assert.NoError(t, err)

		encodedAgain, listAgain, err := Add(&encoded, "sicilian")
		assert.NoError(t, err)
		assert.Equal(t, list, listAgain)
		assert.Equal(t, encoded, encodedAgain)
	})
}

func TestRemove(t *testing.T) {
	t.Run("removes present id", func(t *testing.T) {
		raw := strPtr(`["sicilian","italian"]`)
		_, list, err := Remove(raw, "sicilian")
		assert.NoError(t, err)
		assert.Equal(t, []string{"italian"}, list)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		raw := strPtr(`["sicilian","italian"]`)
		_, list, err := Remove(raw, "caro-kann")
		assert.NoError(t, err)
		assert.Equal(t, []string{"sicilian", "italian"}, list)
	})

	t.Run("remove from empty favorites", func(t *testing.T) {
		_, list, err := Remove(nil, "sicilian")
		assert.NoError(t, err)
		assert.Equal(t, []string{}, list)
	})
}
