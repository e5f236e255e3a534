package world_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/navgrid/grid"
	"github.com/katalvlaran/navgrid/topo"
	"github.com/katalvlaran/navgrid/world"
)

// Example drives one agent across an open map and undoes the last move.
func Example() {
	w, _ := world.New(30, 20, topo.Cardinal4,
		world.WithRand(rand.New(rand.NewSource(1))),
	)

	id, err := w.Spawn(grid.C(1, 1), grid.C(10, 1))
	if err != nil {
		fmt.Println("spawn:", err)

		return
	}

	w.Tick(1.0 / 60)
	comp, _ := w.Agent(id)
	moved := comp.Position()

	w.Undo()
	restored := comp.Position()

	fmt.Println(id, moved != restored)
	// Output: 0 true
}
