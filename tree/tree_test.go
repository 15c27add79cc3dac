package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectSetGetDelete(t *testing.T) {
	o := NewObject()
	o.SetKey("b", NewInt(2))
	o.SetKey("a", NewInt(1))

	require.Equal(t, []string{"b", "a"}, o.Keys(), "tree form preserves insertion order, not sorted order")

	v, ok := o.Get("a")
	require.True(t, ok)
	require.Equal(t, int64(1), v.Int64())

	o.DeleteKey("b")
	require.Equal(t, []string{"a"}, o.Keys())
	require.False(t, o.HasKey("b"))
}

func TestObjectSetKeyPreservesPositionOnOverwrite(t *testing.T) {
	o := NewObject()
	o.SetKey("a", NewInt(1))
	o.SetKey("b", NewInt(2))
	o.SetKey("a", NewInt(99))

	require.Equal(t, []string{"a", "b"}, o.Keys())
	require.Equal(t, int64(99), o.At("a").Int64())
}

func TestObjectAtPanicsOnMissing(t *testing.T) {
	o := NewObject()
	require.Panics(t, func() { o.At("missing") })
}

func TestArrayAppendSetIndex(t *testing.T) {
	a := NewArray(NewInt(1), NewInt(2))
	require.Equal(t, 2, a.Len())

	a.Append(NewInt(3))
	require.Equal(t, 3, a.Len())
	require.Equal(t, int64(3), a.AtIndex(2).Int64())

	a.SetIndex(0, NewInt(100))
	require.Equal(t, int64(100), a.AtIndex(0).Int64())
}

func TestArrayAtIndexOutOfRangePanics(t *testing.T) {
	a := NewArray(NewInt(1))
	require.Panics(t, func() { a.AtIndex(5) })
}

func TestScalarConstructors(t *testing.T) {
	require.Equal(t, "hi", NewString("hi").String())
	require.Equal(t, int64(42), NewInt(42).Int64())
	require.Equal(t, 3.5, NewFloat(3.5).Float64())
	require.True(t, NewBool(true).Bool())
	require.True(t, Null().IsNull())
}

func TestNewFloatRejectsNaNAndInf(t *testing.T) {
	nan := 0.0
	nan = nan / nan
	require.Panics(t, func() { NewFloat(nan) })
	zero := 0.0
	require.Panics(t, func() { NewFloat(1 / zero) })
}

func TestNestedStructure(t *testing.T) {
	root := NewObject()
	root.SetKey("name", NewString("dart"))
	tags := NewArray()
	tags.Append(NewString("json"))
	tags.Append(NewString("binary"))
	root.SetKey("tags", tags)

	require.Equal(t, "dart", root.At("name").String())
	require.Equal(t, 2, root.At("tags").Len())
	require.Equal(t, "json", root.At("tags").AtIndex(0).String())
}
