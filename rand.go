package treap

import (
	randv2 "math/rand/v2"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

// priorities draws node priorities from a tree-local source. The source is
// never shared between trees: Clone builds a new one and Move hands the
// existing one over.
type priorities struct {
	src randv2.Source
}

func newPriorities(cfg Config) *priorities {
	if cfg.source != nil {
		return &priorities{src: cfg.source}
	}
	if cfg.seeded {
		return &priorities{src: randv2.NewPCG(cfg.seed, cfg.seed^defaultSeed)}
	}
	return &priorities{src: randv2.NewPCG(randv2.Uint64(), randv2.Uint64())}
}

func (p *priorities) next() uint64 {
	return p.src.Uint64()
}
