package main

import (
	"fmt"
	"math"
	randv2 "math/rand/v2"

	"github.com/metailurini/treap"
)

// sizeStats summarizes the trees built for one size.
type sizeStats struct {
	N     int
	Seeds int

	MeanHeight float64
	MaxHeight  int

	// Erased counts the keys removed from every tree before the second
	// measurement.
	Erased           int
	MeanErasedHeight float64
	MaxErasedHeight  int
}

// Ratio is the mean loaded height relative to log2 n.
func (s sizeStats) Ratio() float64 {
	if s.N < 2 {
		return 0
	}
	return s.MeanHeight / math.Log2(float64(s.N))
}

// measure builds seeds trees of size n and records their heights after
// loading a random permutation of 0..n-1 and again after erasing a fraction of
// the keys.
func measure(n, seeds int, baseSeed uint64, eraseRatio float64) (sizeStats, error) {
	st := sizeStats{
		N:      n,
		Seeds:  seeds,
		Erased: int(math.Floor(eraseRatio * float64(n))),
	}

	var loaded, erased int
	for i := 0; i < seeds; i++ {
		seed := baseSeed + uint64(i)
		r := randv2.New(randv2.NewPCG(seed, uint64(n)))

		tr := treap.New[int, struct{}](treap.WithSeed(seed), treap.WithCapacity(n))
		for _, k := range r.Perm(n) {
			tr.Insert(k, struct{}{})
		}
		if tr.Len() != n {
			return sizeStats{}, fmt.Errorf("size %d seed %d: loaded %d keys", n, seed, tr.Len())
		}
		loadedHeight := tr.Height()
		loaded += loadedHeight
		st.MaxHeight = max(st.MaxHeight, loadedHeight)

		for _, k := range r.Perm(n)[:st.Erased] {
			tr.Erase(k)
		}
		if err := tr.Validate(); err != nil {
			return sizeStats{}, fmt.Errorf("size %d seed %d: %w", n, seed, err)
		}
		erasedHeight := tr.Height()
		erased += erasedHeight
		st.MaxErasedHeight = max(st.MaxErasedHeight, erasedHeight)

		log.Tracef("n=%d seed=%d height=%d erased height=%d", n, seed,
			loadedHeight, erasedHeight)
	}

	st.MeanHeight = float64(loaded) / float64(seeds)
	st.MeanErasedHeight = float64(erased) / float64(seeds)
	return st, nil
}

// measureAll runs measure for every configured size.
func measureAll(cfg *config) ([]sizeStats, error) {
	results := make([]sizeStats, 0, len(cfg.Sizes))
	for _, n := range cfg.Sizes {
		st, err := measure(n, cfg.Seeds, cfg.BaseSeed, cfg.EraseRatio)
		if err != nil {
			return nil, err
		}
		log.Infof("n=%-7d mean height %6.2f  max %3d  mean/log2 n %.2f  "+
			"after erasing %d: mean %6.2f  max %3d", st.N, st.MeanHeight,
			st.MaxHeight, st.Ratio(), st.Erased, st.MeanErasedHeight,
			st.MaxErasedHeight)
		results = append(results, st)
	}
	return results, nil
}
