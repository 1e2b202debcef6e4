package kvantuma_test

import (
	"testing"

	"github.com/konceptosociala/kvantuma"
)

type benchPos struct{ X, Y, Z float32 }
type benchVel struct{ X, Y, Z float32 }

func BenchmarkSpawn2Components(b *testing.B) {
	kvantuma.ResetRegistry()
	w := kvantuma.NewWorld()
	defer w.Close()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Spawn(kvantuma.Pod(benchPos{X: float32(i)}), kvantuma.Pod(benchVel{Y: 1}))
	}
}

func BenchmarkSpawnErased(b *testing.B) {
	kvantuma.ResetRegistry()
	w := kvantuma.NewWorld()
	defer w.Close()
	pos := benchPos{X: 1}
	records := []kvantuma.Erased{
		kvantuma.ErasedOf(&pos),
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.SpawnErased(records)
	}
}

func BenchmarkQuery2(b *testing.B) {
	kvantuma.ResetRegistry()
	w := kvantuma.NewWorld()
	defer w.Close()
	for i := 0; i < 10000; i++ {
		w.Spawn(kvantuma.Pod(benchPos{X: float32(i)}), kvantuma.Pod(benchVel{Y: 1}))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, row := range kvantuma.Query2[benchPos, benchVel](w) {
			row.A.X += row.B.X
		}
	}
}

func BenchmarkQueryErased(b *testing.B) {
	kvantuma.ResetRegistry()
	w := kvantuma.NewWorld()
	defer w.Close()
	for i := 0; i < 10000; i++ {
		w.Spawn(kvantuma.Pod(benchPos{}), kvantuma.Pod(benchVel{}))
	}
	requests := []kvantuma.ComponentRequest{
		{ID: kvantuma.ID[benchPos](), Access: kvantuma.AccessWrite},
		{ID: kvantuma.ID[benchVel](), Access: kvantuma.AccessRead},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.QueryErased(requests)
	}
}
