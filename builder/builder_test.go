package builder

import (
	"testing"

	"github.com/kesselring/dartbuf/finalize"
	"github.com/kesselring/dartbuf/tree"
	"github.com/stretchr/testify/require"
)

func TestBuildObjectRejectsDuplicateKeys(t *testing.T) {
	_, err := BuildObject([]Pair{
		{Key: "a", Value: tree.NewInt(1)},
		{Key: "a", Value: tree.NewInt(2)},
	})
	require.Error(t, err)
}

func TestBuildObjectRejectsTooLongKey(t *testing.T) {
	longKey := make([]byte, 70000)
	_, err := BuildObject([]Pair{{Key: string(longKey), Value: tree.NewInt(1)}})
	require.Error(t, err)
}

func TestBuildObjectSorted(t *testing.T) {
	buf, err := BuildObject([]Pair{
		{Key: "zz", Value: tree.NewInt(1)},
		{Key: "a", Value: tree.NewInt(2)},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "zz"}, buf.Root().Object().Keys())
}

// TestBuildObjectGetWithDisagreeingLengthAndBytes guards against a
// bisection that compares prefix bytes before key length: "b" sorts
// before "aa" (shorter key first, §3 invariant 1) even though 'b' > 'a'
// bytewise, so Get must still find "b" by narrowing on length, not bytes.
func TestBuildObjectGetWithDisagreeingLengthAndBytes(t *testing.T) {
	buf, err := BuildObject([]Pair{
		{Key: "b", Value: tree.NewInt(1)},
		{Key: "aa", Value: tree.NewInt(2)},
	})
	require.NoError(t, err)

	root := buf.Root().Object()
	require.Equal(t, []string{"b", "aa"}, root.Keys())

	v, ok := root.Get("b")
	require.True(t, ok, "Get(\"b\") should find the key")
	require.Equal(t, int64(1), v.Int64())

	v, ok = root.Get("aa")
	require.True(t, ok, "Get(\"aa\") should find the key")
	require.Equal(t, int64(2), v.Int64())
}

func TestMergeIncomingWinsOnConflict(t *testing.T) {
	baseV := tree.NewObject()
	baseV.SetKey("a", tree.NewInt(1))
	baseV.SetKey("b", tree.NewInt(2))
	baseBuf, err := finalize.Finalize(baseV)
	require.NoError(t, err)

	incV := tree.NewObject()
	incV.SetKey("b", tree.NewInt(99))
	incV.SetKey("c", tree.NewInt(3))
	incBuf, err := finalize.Finalize(incV)
	require.NoError(t, err)

	merged, err := Merge(baseBuf.Root().Object(), incBuf.Root().Object())
	require.NoError(t, err)

	root := merged.Root().Object()
	require.Equal(t, []string{"a", "b", "c"}, root.Keys())
	require.Equal(t, int64(1), root.At("a").Int64())
	require.Equal(t, int64(99), root.At("b").Int64(), "incoming must win on key conflict")
	require.Equal(t, int64(3), root.At("c").Int64())
}

func TestMergeDisjointKeys(t *testing.T) {
	baseV := tree.NewObject()
	baseV.SetKey("x", tree.NewInt(1))
	baseBuf, err := finalize.Finalize(baseV)
	require.NoError(t, err)

	incV := tree.NewObject()
	incV.SetKey("y", tree.NewInt(2))
	incBuf, err := finalize.Finalize(incV)
	require.NoError(t, err)

	merged, err := Merge(baseBuf.Root().Object(), incBuf.Root().Object())
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, merged.Root().Object().Keys())
}

func TestMergeEmptyIncoming(t *testing.T) {
	baseV := tree.NewObject()
	baseV.SetKey("x", tree.NewInt(1))
	baseBuf, err := finalize.Finalize(baseV)
	require.NoError(t, err)

	incBuf, err := finalize.Finalize(tree.NewObject())
	require.NoError(t, err)

	merged, err := Merge(baseBuf.Root().Object(), incBuf.Root().Object())
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, merged.Root().Object().Keys())
}

func TestProjectIntersection(t *testing.T) {
	baseV := tree.NewObject()
	baseV.SetKey("a", tree.NewInt(1))
	baseV.SetKey("b", tree.NewInt(2))
	baseV.SetKey("c", tree.NewInt(3))
	baseBuf, err := finalize.Finalize(baseV)
	require.NoError(t, err)

	projected, err := Project(baseBuf.Root().Object(), []string{"c", "a", "missing"})
	require.NoError(t, err)

	root := projected.Root().Object()
	require.Equal(t, []string{"a", "c"}, root.Keys())
}
