package treap

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

var benchDistributions = []struct {
	name string
	kind distributionKind
}{
	{name: "Uniform", kind: distUniform},
	{name: "Ascending", kind: distAscending},
	{name: "Zipfian", kind: distZipf},
}

var benchWorkloads = []struct {
	name         string
	writePercent int
}{
	{name: "ReadMostly", writePercent: 5},
	{name: "WriteHeavy", writePercent: 90},
	{name: "Mixed", writePercent: 50},
}

const benchKeyRange = 1 << 12

// keyGen draws benchmark keys from one distribution.
type keyGen struct {
	kind      distributionKind
	r         *rand.Rand
	zipf      *rand.Zipf
	ascending *uint64
}

func newKeyGen(kind distributionKind, seed int64, ascending *uint64) *keyGen {
	g := &keyGen{kind: kind, r: rand.New(rand.NewSource(seed)), ascending: ascending}
	if kind == distZipf {
		g.zipf = rand.NewZipf(g.r, 1.2, 1, benchKeyRange-1)
	}
	return g
}

func (g *keyGen) next() int {
	switch g.kind {
	case distAscending:
		return int(atomic.AddUint64(g.ascending, 1)-1) % benchKeyRange
	case distZipf:
		return int(g.zipf.Uint64())
	default:
		return g.r.Intn(benchKeyRange)
	}
}

func BenchmarkTreeWorkloads(b *testing.B) {
	threadCounts := []int{1, 2, 4, 8}

	for _, dist := range benchDistributions {
		b.Run(dist.name, func(b *testing.B) {
			for _, workload := range benchWorkloads {
				b.Run(workload.name, func(b *testing.B) {
					for _, threads := range threadCounts {
						b.Run(fmt.Sprintf("P%d", threads), func(b *testing.B) {
							tr := New[int, int](WithSeed(1), WithCapacity(benchKeyRange))
							for i := 0; i < benchKeyRange/2; i++ {
								tr.Insert(i, i)
							}

							var mu sync.Mutex
							var ascendingCounter uint64
							var ops int64

							b.ResetTimer()

							var wg sync.WaitGroup
							wg.Add(threads)
							for tIdx := 0; tIdx < threads; tIdx++ {
								go func(worker int) {
									defer wg.Done()
									gen := newKeyGen(dist.kind, int64(worker+1)*1_000_003, &ascendingCounter)
									r := gen.r

									for atomic.AddInt64(&ops, 1) <= int64(b.N) {
										key := gen.next()
										opChoice := r.Intn(100)

										mu.Lock()
										if opChoice < workload.writePercent {
											if r.Intn(2) == 0 {
												tr.Insert(key, r.Intn(1<<16))
											} else {
												tr.Erase(key)
											}
										} else {
											if r.Intn(2) == 0 {
												_, _ = tr.Get(key)
											} else {
												_ = tr.LowerBound(key).Valid()
											}
										}
										mu.Unlock()
									}
								}(tIdx)
							}

							wg.Wait()
							b.StopTimer()

							s := tr.Stats()
							b.ReportMetric(float64(s.Height), "height")
						})
					}
				})
			}
		})
	}
}

func BenchmarkTreeScan(b *testing.B) {
	tr := New[int, int](WithSeed(1))
	for i := 0; i < benchKeyRange; i++ {
		tr.Insert(i, i)
	}

	b.Run("Cursor", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for c := tr.Begin(); c.Valid(); _ = c.Next() {
				sum += c.Value()
			}
			_ = sum
		}
	})

	b.Run("All", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, v := range tr.All() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("Range", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			lo := i % benchKeyRange
			_ = tr.Range(lo, lo+64)
		}
	})
}
