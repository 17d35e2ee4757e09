package Trees

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const bSize = 1 << 15

var (
	bPerm   = rand.New(rand.NewSource(1)).Perm(bSize)
	sideEff bool
)

func BenchmarkThreaded_Insert(b *testing.B) {
	for range b.N {
		t := New[int]()
		for _, v := range bPerm {
			t.Insert(v)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for _, v := range bPerm {
			t.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for _, v := range bPerm {
			t.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkRedBlack_Insert(b *testing.B) {
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for _, v := range bPerm {
			t.Put(v, struct{}{})
		}
	}
}

func BenchmarkThreaded_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := From(bPerm)
		b.StartTimer()
		for v := range bSize {
			t.Remove(v)
		}
	}
}

func BenchmarkRedBlack_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := redblacktree.NewWithIntComparator()
		for _, v := range bPerm {
			t.Put(v, struct{}{})
		}
		b.StartTimer()
		for v := range bSize {
			t.Remove(v)
		}
	}
}

func BenchmarkThreaded_InOrder(b *testing.B) {
	t := From(bPerm)
	b.ResetTimer()
	for range b.N {
		for v := range t.All() {
			sideEff = v < 0
		}
	}
}

func BenchmarkThreaded_Find(b *testing.B) {
	t := From(bPerm)
	b.ResetTimer()
	for range b.N {
		for _, v := range bPerm {
			sideEff = t.Has(v)
		}
	}
}

func BenchmarkHaxmap_Find(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	for _, v := range bPerm {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range bPerm {
			_, sideEff = m.Get(v)
		}
	}
}

func BenchmarkHashmap_Find(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, v := range bPerm {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range bPerm {
			_, sideEff = m.Get(v)
		}
	}
}
