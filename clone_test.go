package treap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fillTree(tr *Tree[int, int], keys ...int) {
	for _, k := range keys {
		tr.Insert(k, k*10)
	}
}

func TestClone_PreservesShapeAndPriorities(t *testing.T) {
	t.Parallel()
	tr := newIntTree(t)
	fillTree(tr, 8, 3, 12, 1, 5, 9, 14, 7)

	cp := tr.Clone()
	require.Equal(t, shape(tr, tr.root), shape(cp, cp.root))
	require.Equal(t, tr.Len(), cp.Len())
	require.Equal(t, tr.Height(), cp.Height())
	assertValid(t, cp)
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()
	tr := newIntTree(t)
	fillTree(tr, 1, 2, 3, 4, 5)

	cp := tr.Clone()
	cp.Erase(3)
	cp.Insert(6, 60)
	require.NoError(t, cp.Find(1).SetValue(-1))

	require.Equal(t, []int{1, 2, 3, 4, 5}, keysOf(tr))
	require.Equal(t, []int{1, 2, 4, 5, 6}, keysOf(cp))
	v, _ := tr.Get(1)
	require.Equal(t, 10, v)

	tr.Erase(1)
	require.True(t, cp.Contains(1))
	assertValid(t, tr)
	assertValid(t, cp)
}

func TestClone_KeepsInvariantChecksAndTakesNewSource(t *testing.T) {
	t.Parallel()
	tr := newIntTree(t)
	fillTree(tr, 1, 2, 3)

	cp := tr.Clone(WithRandSource(&stubRandSource{values: []uint64{^uint64(0)}}))
	require.True(t, cp.config.checkInvariants)
	require.NotSame(t, tr.rng, cp.rng)

	// The largest key with the largest priority always ends up at the root.
	cp.Insert(4, 40)
	require.Equal(t, 4, cp.nodes[cp.root].key)
}

func TestClone_SameSeedSameFuture(t *testing.T) {
	t.Parallel()
	tr := newIntTree(t)
	fillTree(tr, 10, 20, 30)

	a := tr.Clone(WithSeed(99))
	b := tr.Clone(WithSeed(99))
	for k := 0; k < 50; k++ {
		a.Insert(k, k)
		b.Insert(k, k)
	}
	require.Equal(t, shape(a, a.root), shape(b, b.root))
}

func TestCopyFrom_ReplacesContents(t *testing.T) {
	t.Parallel()
	src := newIntTree(t)
	fillTree(src, 1, 2, 3)
	dst := newIntTree(t)
	fillTree(dst, 100, 200)

	stale := dst.Find(100)
	staleEnd := dst.End()
	rng := dst.rng

	dst.CopyFrom(src)
	require.Equal(t, []int{1, 2, 3}, keysOf(dst))
	require.Same(t, rng, dst.rng)
	require.False(t, stale.Valid())
	require.False(t, staleEnd.IsEnd())
	require.ErrorIs(t, staleEnd.Prev(), ErrInvalidCursor)

	dst.Insert(4, 40)
	require.False(t, src.Contains(4))
	assertValid(t, dst)
	assertValid(t, src)

	dst.CopyFrom(dst)
	require.Equal(t, []int{1, 2, 3, 4}, keysOf(dst))
}

func TestMove_TransfersContentsAndSource(t *testing.T) {
	t.Parallel()
	src := newIntTree(t)
	fillTree(src, 5, 1, 9)
	rng := src.rng
	c := src.Find(5)
	end := src.End()

	dst := src.Move()
	require.Equal(t, []int{1, 5, 9}, keysOf(dst))
	require.Same(t, rng, dst.rng)
	require.True(t, dst.config.checkInvariants)

	require.Zero(t, src.Len())
	require.Empty(t, keysOf(src))
	require.NotSame(t, rng, src.rng)
	require.False(t, c.Valid())
	require.False(t, end.IsEnd())

	// The moved-from tree stays usable.
	src.Insert(2, 20)
	require.Equal(t, []int{2}, keysOf(src))
	assertValid(t, src)
	assertValid(t, dst)

	dc := dst.Find(9)
	require.NoError(t, dc.Prev())
	require.Equal(t, 5, dc.Key())
}

func TestMoveFrom_ReplacesContents(t *testing.T) {
	t.Parallel()
	src := newIntTree(t)
	fillTree(src, 1, 2)
	dst := newIntTree(t)
	fillTree(dst, 7)
	stale := dst.Find(7)

	dst.MoveFrom(src)
	require.Equal(t, []int{1, 2}, keysOf(dst))
	require.Zero(t, src.Len())
	require.False(t, stale.Valid())

	dst.MoveFrom(dst)
	require.Equal(t, []int{1, 2}, keysOf(dst))
}
