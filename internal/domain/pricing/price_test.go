package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   string
		value float64
		ok    bool
	}{
		{raw: "50 SR", value: 50, ok: true},
		{raw: "1,234.56 SR", value: 1234.56, ok: true},
		{raw: "5.", value: 5, ok: true},
		{raw: "", ok: false},
		{raw: "SR", ok: false},
		{raw: "..", ok: false},
	}

	for _, tt := range tests {
		value, ok := ParsePrice(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		if tt.ok {
			assert.Equal(t, tt.value, value, tt.raw)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "50 SR", FormatPrice(50))
	assert.Equal(t, "1234.56 SR", FormatPrice(1234.56))
	assert.Equal(t, "0 SR", FormatPrice(0))
}

func TestFieldValue(t *testing.T) {
	t.Parallel()

	pkg, _ := SeededCollection().At(0)

	name, err := FieldName.Value(pkg)
	require.NoError(t, err)
	assert.Equal(t, "Solo74", name)

	price, err := FieldPrice.Value(pkg)
	require.NoError(t, err)
	assert.Equal(t, "50 SR", price)

	assert.True(t, FieldSellPrice.Numeric())
	assert.False(t, FieldDetails.Numeric())

	_, err = Field(42).Value(pkg)
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestHeadersSetRevertsBlankToDefault(t *testing.T) {
	t.Parallel()

	h, err := DefaultHeaders().Set(2, "Data & Minutes")
	require.NoError(t, err)
	assert.Equal(t, "Data & Minutes", h[2])

	h, err = h.Set(2, "  ")
	require.NoError(t, err)
	assert.Equal(t, "Data+Minutes", h[2])

	_, err = h.Set(HeaderCount, "x")
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}
