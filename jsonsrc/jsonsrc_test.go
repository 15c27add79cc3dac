package jsonsrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeScalarTypes(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"s":"hi","i":42,"f":1.5,"b":true,"n":null}`))
	require.NoError(t, err)
	require.Equal(t, "hi", v.At("s").String())
	require.Equal(t, int64(42), v.At("i").Int64())
	require.Equal(t, 1.5, v.At("f").Float64())
	require.Equal(t, true, v.At("b").Bool())
	require.True(t, v.At("n").IsNull())
}

func TestDecodeNestedObjectAndArray(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"items":[1,2,3],"meta":{"flag":false}}`))
	require.NoError(t, err)

	items := v.At("items")
	require.Equal(t, 3, items.Len())
	require.Equal(t, int64(1), items.AtIndex(0).Int64())
	require.Equal(t, int64(3), items.AtIndex(2).Int64())

	meta := v.At("meta")
	require.Equal(t, false, meta.At("flag").Bool())
}

func TestDecodeLargeIntegerStaysInteger(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"big": 9223372036854775807}`))
	require.NoError(t, err)
	require.Equal(t, int64(9223372036854775807), v.At("big").Int64())
}

func TestDecodeOutOfInt64RangeNumberBecomesDecimal(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"big": 1e300}`))
	require.NoError(t, err)
	require.Equal(t, 1e300, v.At("big").Float64())
}

func TestDecodeEmptyContainers(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"o":{},"a":[]}`))
	require.NoError(t, err)
	require.Equal(t, 0, v.At("o").Len())
	require.Equal(t, 0, v.At("a").Len())
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	_, err := DecodeBytes([]byte(`{} garbage`))
	require.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeBytes([]byte(`{"a":`))
	require.Error(t, err)
}
