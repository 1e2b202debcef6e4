// Profiling:
// go build ./profile/spawn
// go tool pprof -http=":8000" -nodefraction=0.001 ./spawn mem.pprof

package main

import (
	"fmt"

	"github.com/konceptosociala/kvantuma"
	"github.com/pkg/profile"
)

type position struct {
	X, Y, Z float32
}

type velocity struct {
	X, Y, Z float32
}

func main() {
	rounds := 50
	entities := 100000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, entities)
	p.Stop()
}

func run(rounds, entities int) {
	for r := 0; r < rounds; r++ {
		w := kvantuma.NewWorld()
		for i := 0; i < entities; i++ {
			w.Spawn(
				kvantuma.Pod(position{X: float32(i)}),
				kvantuma.Pod(velocity{Y: 1}),
			)
		}
		moved := 0
		for _, row := range kvantuma.Query2[position, velocity](w) {
			row.A.X += row.B.X
			row.A.Y += row.B.Y
			row.A.Z += row.B.Z
			moved++
		}
		if moved != entities {
			panic(fmt.Sprintf("expected %d rows, got %d", entities, moved))
		}
		w.Close()
	}
}
