package queue

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	eapache "github.com/eapache/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modelSlice returns the contents of the reference queue in FIFO order.
func modelSlice(q *eapache.Queue) []int {
	out := make([]int, q.Length())
	for i := range out {
		out[i] = q.Get(i).(int)
	}
	return out
}

func TestRing_MatchesReferenceQueue(t *testing.T) {
	seeds := []uint64{1, 7, 42, 2024}

	for _, seed := range seeds {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			rb, err := NewWithCapacity[int](rnd.IntN(4))
			require.NoError(t, err)
			model := eapache.New()

			enqueues, dequeues := 0, 0
			for step := 0; step < 5000; step++ {
				switch op := rnd.IntN(10); {
				case op < 5:
					rb.Enqueue(step)
					model.Add(step)
					enqueues++
				case op < 8:
					got, err := rb.Dequeue()
					if model.Length() == 0 {
						require.ErrorIs(t, err, ErrEmpty)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, model.Remove().(int), got, "step %d", step)
					dequeues++
				default:
					got, err := rb.Peek()
					if model.Length() == 0 {
						require.ErrorIs(t, err, ErrEmpty)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, model.Peek().(int), got, "step %d", step)
				}

				require.Equal(t, enqueues-dequeues, rb.Len())
				require.LessOrEqual(t, rb.Len(), rb.Cap())
				if step%97 == 0 {
					assert.Equal(t, modelSlice(model), rb.ToSlice(), "step %d", step)
				}
			}
		})
	}
}

func TestRing_StringMatchesToSlice(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 5))
	rb := New[int]()

	for step := 0; step < 500; step++ {
		if rnd.IntN(3) == 0 {
			_, _ = rb.Dequeue()
		} else {
			rb.Enqueue(rnd.IntN(1000))
		}

		items := rb.ToSlice()
		parts := make([]string, len(items))
		for i, v := range items {
			parts[i] = fmt.Sprint(v)
		}
		assert.Equal(t, "["+strings.Join(parts, ", ")+"]", rb.String(), "step %d", step)
	}
}
