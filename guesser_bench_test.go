package typeguess

import (
	"testing"
	"time"
)

// ============================================================
// Guesser Benchmarks
// ============================================================
//
// Run with:
//   go test -bench=BenchmarkAdjust -benchmem -count=5 .
//
// The scalar benchmarks must report 0 allocs/op: the hard-typed path is the
// hot loop of bulk loaders.

func BenchmarkAdjust_IntScalar(b *testing.B) {
	g := NewGuesser()
	var v any = int64(1234567)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.AdjustToCompensateForValue(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdjust_FloatScalar(b *testing.B) {
	g := NewGuesser()
	var v any = 1234.5678
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.AdjustToCompensateForValue(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdjust_DurationScalar(b *testing.B) {
	g := NewGuesser()
	var v any = 90 * time.Minute
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.AdjustToCompensateForValue(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdjust_IntegerString(b *testing.B) {
	g := NewGuesser()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.AdjustToCompensateForValue("1234567"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdjust_DecimalString(b *testing.B) {
	g := NewGuesser()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.AdjustToCompensateForValue("1234.56"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdjust_FallbackString(b *testing.B) {
	g := NewGuesser()
	_ = g.AdjustToCompensateForValue("not a number")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.AdjustToCompensateForValue("still not a number"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPool_GetPut(b *testing.B) {
	pool := NewGuesserPool(DefaultSettings())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := pool.Get()
		_ = g.AdjustToCompensateForValue(int64(42))
		pool.Put(g)
	}
}
