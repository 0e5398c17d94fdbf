package services

import (
	"context"
	"fmt"
	"math"
	"route-optimization-service/internal/ports"
)

// Upper bound on stops the Held-Karp table is allowed to cover.
// The table holds k * 2^k entries, which is 1M int64 values at 16.
const maxHeldKarpStops = 16

const noArc = int64(math.MaxInt64)

// heldKarpOrder returns the cheapest depot-to-depot visiting order of stops
// under costs, using the Held-Karp dynamic program over stop subsets.
//
// dp[mask][j] is the cheapest cost to leave the depot, visit exactly the
// stops in mask, and stand at stops[j]. Ties keep the lower predecessor and
// the lower final stop, so the order is deterministic.
func heldKarpOrder(ctx context.Context, costs [][]int64, stops []int) ([]int, error) {
	k := len(stops)
	if k <= 1 {
		return append([]int(nil), stops...), nil
	}
	if k > maxHeldKarpStops {
		return nil, fmt.Errorf("held-karp: %d stops exceeds limit %d", k, maxHeldKarpStops)
	}

	full := 1<<k - 1
	dp := make([]int64, (full+1)*k)
	parent := make([]int8, (full+1)*k)
	for i := range dp {
		dp[i] = noArc
		parent[i] = -1
	}

	for j, s := range stops {
		dp[(1<<j)*k+j] = costs[0][s]
	}

	for mask := 1; mask <= full; mask++ {
		if mask&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("held-karp: %w: %v", ports.ErrInfeasible, err)
			}
		}

		for j := 0; j < k; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			if prev == 0 {
				continue
			}

			best := dp[mask*k+j]
			for p := 0; p < k; p++ {
				if prev&(1<<p) == 0 {
					continue
				}
				cand := addCost(dp[prev*k+p], costs[stops[p]][stops[j]])
				if cand < best {
					best = cand
					parent[mask*k+j] = int8(p)
				}
			}
			dp[mask*k+j] = best
		}
	}

	last := -1
	bestTotal := noArc
	for j := 0; j < k; j++ {
		total := addCost(dp[full*k+j], costs[stops[j]][0])
		if total < bestTotal {
			bestTotal = total
			last = j
		}
	}
	if last < 0 {
		return nil, fmt.Errorf("held-karp: %w: no closed tour over %d stops", ports.ErrInfeasible, k)
	}

	order := make([]int, k)
	mask := full
	j := last
	for pos := k - 1; pos >= 0; pos-- {
		order[pos] = stops[j]
		p := int(parent[mask*k+j])
		mask ^= 1 << j
		j = p
	}

	return order, nil
}

// addCost sums two arc costs, saturating at noArc.
func addCost(a, b int64) int64 {
	if a == noArc || b == noArc || a > noArc-b {
		return noArc
	}
	return a + b
}
