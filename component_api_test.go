package kvantuma_test

import (
	"sync"
	"testing"

	"github.com/konceptosociala/kvantuma"
	"github.com/stretchr/testify/require"
)

type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Health struct{ Current, Max int32 }
type Tag struct{}
type NeverSpawned struct{ N int64 }

func TestIdentityStability(t *testing.T) {
	kvantuma.ResetRegistry()
	posID := kvantuma.ID[Position]()
	velID := kvantuma.ID[Velocity]()

	require.NotZero(t, posID, "sentinel identity 0 must never be assigned")
	require.NotZero(t, velID)
	require.NotEqual(t, posID, velID, "distinct types must never collide")

	for i := 0; i < 100; i++ {
		require.Equal(t, posID, kvantuma.ID[Position]())
		require.Equal(t, velID, kvantuma.ID[Velocity]())
	}
}

func TestIdentityAssignmentIsThreadSafe(t *testing.T) {
	kvantuma.ResetRegistry()
	const goroutines = 32
	ids := make([]kvantuma.ComponentID, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			if g%2 == 0 {
				ids[g] = kvantuma.ID[Position]()
			} else {
				ids[g] = kvantuma.ID[Velocity]()
			}
		}(g)
	}
	wg.Wait()

	posID := kvantuma.ID[Position]()
	velID := kvantuma.ID[Velocity]()
	for g := 0; g < goroutines; g++ {
		if g%2 == 0 {
			require.Equal(t, posID, ids[g])
		} else {
			require.Equal(t, velID, ids[g])
		}
	}
}

func TestPodMetadata(t *testing.T) {
	kvantuma.ResetRegistry()
	c := kvantuma.Pod(Position{X: 1, Y: 2})
	meta := c.Meta()

	require.Equal(t, kvantuma.ID[Position](), meta.ID)
	require.Equal(t, kvantuma.KindPod, meta.Kind)
	require.Equal(t, kvantuma.LayoutOf[Position](), meta.Layout)
	require.Nil(t, meta.Drop)
}

func TestExternMetadataCarriesDrop(t *testing.T) {
	kvantuma.ResetRegistry()
	c := kvantuma.Extern(Health{Current: 5}, func(h *Health) {})
	meta := c.Meta()

	require.Equal(t, kvantuma.KindExtern, meta.Kind)
	require.NotNil(t, meta.Drop)
}

func TestZeroSizeLayout(t *testing.T) {
	layout := kvantuma.LayoutOf[Tag]()
	require.Zero(t, layout.Size)
}
