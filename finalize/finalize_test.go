package finalize

import (
	"testing"

	"github.com/kesselring/dartbuf/tree"
	"github.com/stretchr/testify/require"
)

func TestFinalizeSimpleObject(t *testing.T) {
	v := tree.NewObject()
	v.SetKey("bb", tree.NewInt(7))
	v.SetKey("a", tree.NewString("hi"))

	buf, err := Finalize(v)
	require.NoError(t, err)

	root := buf.Root().Object()
	require.Equal(t, 2, root.Len())
	// sorted by (length, then bytes): "a" (len 1) before "bb" (len 2)
	require.Equal(t, []string{"a", "bb"}, root.Keys())

	av, ok := root.Get("a")
	require.True(t, ok)
	require.Equal(t, "hi", av.String())

	bv, ok := root.Get("bb")
	require.True(t, ok)
	require.Equal(t, int64(7), bv.Int64())
}

func TestFinalizeNestedArrayAndObject(t *testing.T) {
	root := tree.NewObject()
	arr := tree.NewArray(tree.NewInt(1), tree.NewBool(true), tree.NewString("x"))
	root.SetKey("items", arr)
	nested := tree.NewObject()
	nested.SetKey("flag", tree.NewBool(false))
	root.SetKey("meta", nested)

	buf, err := Finalize(root)
	require.NoError(t, err)

	obj := buf.Root().Object()
	items := obj.At("items").Array()
	require.Equal(t, 3, items.Len())
	require.Equal(t, int64(1), items.At(0).Int64())
	require.True(t, items.At(1).Bool())
	require.Equal(t, "x", items.At(2).String())

	meta := obj.At("meta").Object()
	require.False(t, meta.At("flag").Bool())
}

func TestFinalizeRejectsScalarRoot(t *testing.T) {
	_, err := Finalize(tree.NewInt(1))
	require.Error(t, err)
}

func TestFinalizeByteEquality(t *testing.T) {
	build := func() *tree.Value {
		v := tree.NewObject()
		v.SetKey("k", tree.NewString("v"))
		return &v
	}
	a, err := Finalize(*build())
	require.NoError(t, err)
	b, err := Finalize(*build())
	require.NoError(t, err)

	require.Equal(t, a.Bytes(), b.Bytes(), "identical trees must finalize to byte-identical buffers")
}

func TestLiftRoundTrip(t *testing.T) {
	orig := tree.NewObject()
	orig.SetKey("n", tree.NewInt(123))
	orig.SetKey("s", tree.NewString("hello"))
	orig.SetKey("f", tree.NewFloat(2.5))
	arr := tree.NewArray(tree.NewInt(1), tree.NewInt(2))
	orig.SetKey("arr", arr)

	buf, err := Finalize(orig)
	require.NoError(t, err)

	lifted := Lift(buf)
	require.Equal(t, int64(123), lifted.At("n").Int64())
	require.Equal(t, "hello", lifted.At("s").String())
	require.Equal(t, 2.5, lifted.At("f").Float64())
	require.Equal(t, 2, lifted.At("arr").Len())

	// Mutating the lifted tree must not affect the finalized buffer.
	lifted.SetKey("n", tree.NewInt(999))
	require.Equal(t, int64(123), buf.Root().Object().At("n").Int64())
}

func TestFinalizeEmptyObject(t *testing.T) {
	buf, err := Finalize(tree.NewObject())
	require.NoError(t, err)
	require.Equal(t, 0, buf.Root().Object().Len())
}
