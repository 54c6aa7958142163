package shortest

import (
	"fmt"
	"math/rand"
	"testing"

	oracle "github.com/RyanCarrier/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/citypaths/pkg/citygraph"
)

// TestPathCostAgainstOracle cross-checks random graphs against an
// independent Dijkstra implementation.
func TestPathCostAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 25; round++ {
		n := 2 + rng.Intn(12)
		b, err := citygraph.NewBuilder(n)
		require.NoError(t, err)

		ref := oracle.NewGraph()
		for i := 0; i <= n; i++ {
			ref.AddVertex(i)
		}
		cheapest := map[[2]int]int64{}

		for i := 1; i <= n; i++ {
			var edges []citygraph.Edge
			for k := rng.Intn(4); k > 0; k-- {
				ed := citygraph.Edge{To: 1 + rng.Intn(n), Cost: int64(1 + rng.Intn(20))}
				edges = append(edges, ed)
				key := [2]int{i, ed.To}
				if c, ok := cheapest[key]; !ok || ed.Cost < c {
					cheapest[key] = ed.Cost
				}
			}
			_, err := b.Declare(fmt.Sprintf("c%d", i), edges...)
			require.NoError(t, err)
		}
		for key, c := range cheapest {
			require.NoError(t, ref.AddArc(key[0], key[1], c))
		}

		g, err := b.Freeze()
		require.NoError(t, err)

		for s := 1; s <= n; s++ {
			for d := 1; d <= n; d++ {
				if s == d {
					continue
				}
				got, err := PathCost(g, s, d)
				require.NoError(t, err)

				best, oerr := ref.Shortest(s, d)
				if oerr != nil {
					assert.Equal(t, Unreachable, got, "round %d: %d->%d", round, s, d)
					continue
				}
				assert.Equal(t, Reached(best.Distance), got, "round %d: %d->%d", round, s, d)
			}
		}
	}
}
