package packet

import (
	"testing"

	"github.com/kesselring/dartbuf/tree"
	"github.com/stretchr/testify/require"
)

func sampleTree() tree.Value {
	v := tree.NewObject()
	v.SetKey("a", tree.NewInt(1))
	return v
}

func TestEmptyPacket(t *testing.T) {
	var p Packet
	require.True(t, p.IsEmpty())
	_, ok := p.AsTree()
	require.False(t, ok)
	_, ok = p.AsBuffer()
	require.False(t, ok)
	_, err := p.Finalize()
	require.Error(t, err)
	_, err = p.Lift()
	require.Error(t, err)
}

func TestFromTreeAndFinalize(t *testing.T) {
	p := FromTree(sampleTree())
	tv, ok := p.AsTree()
	require.True(t, ok)
	require.Equal(t, int64(1), tv.At("a").Int64())

	finalized, err := p.Finalize()
	require.NoError(t, err)
	buf, ok := finalized.AsBuffer()
	require.True(t, ok)
	require.Equal(t, int64(1), buf.Root().Object().At("a").Int64())

	// Original packet is unaffected; Finalize returns a new Packet.
	_, stillTree := p.AsTree()
	require.True(t, stillTree)
}

func TestFromBufferAndLift(t *testing.T) {
	finalized, err := FromTree(sampleTree()).Finalize()
	require.NoError(t, err)

	lifted, err := finalized.Lift()
	require.NoError(t, err)
	tv, ok := lifted.AsTree()
	require.True(t, ok)
	require.Equal(t, int64(1), tv.At("a").Int64())
}

func TestFinalizeIsNoOpOnBufferForm(t *testing.T) {
	finalized, err := FromTree(sampleTree()).Finalize()
	require.NoError(t, err)
	again, err := finalized.Finalize()
	require.NoError(t, err)
	buf1, _ := finalized.AsBuffer()
	buf2, _ := again.AsBuffer()
	require.Same(t, buf1, buf2)
}

func TestLiftIsNoOpOnTreeForm(t *testing.T) {
	p := FromTree(sampleTree())
	again, err := p.Lift()
	require.NoError(t, err)
	_, ok := again.AsTree()
	require.True(t, ok)
}
