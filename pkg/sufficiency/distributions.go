package sufficiency

import "github.com/matzehuels/phipebble/pkg/pebble"

// KeyDistributions returns the starting distributions tried for a pebble
// count on an n-vertex graph, in this order:
//
//  1. n concentrated distributions, all pebbles on vertex v, for v = 0..n-1;
//  2. one even distribution: pebbles/n everywhere, with the remainder given
//     one each to the lowest-numbered vertices;
//  3. when n >= 2 and pebbles >= 2, one split distribution per pair i < j
//     (pairs in lexicographic order) with pebbles/2 on i and the rest on j.
//
// That is n + 1 + n(n-1)/2 distributions, or n + 1 when step 3 does not
// apply. The set is deliberately small and is not every distribution of the
// given size. KeyDistributions returns nil for n <= 0.
func KeyDistributions(n, pebbles int) []pebble.Distribution {
	if n <= 0 {
		return nil
	}

	dists := make([]pebble.Distribution, 0, KeyDistributionCount(n, pebbles))

	for v := 0; v < n; v++ {
		d := make(pebble.Distribution, n)
		d[v] = pebbles
		dists = append(dists, d)
	}

	even := make(pebble.Distribution, n)
	for v := range even {
		even[v] = pebbles / n
	}
	for v := 0; v < pebbles%n; v++ {
		even[v]++
	}
	dists = append(dists, even)

	if n >= 2 && pebbles >= 2 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := make(pebble.Distribution, n)
				d[i] = pebbles / 2
				d[j] = pebbles - d[i]
				dists = append(dists, d)
			}
		}
	}

	return dists
}

// KeyDistributionCount returns len(KeyDistributions(n, pebbles)) without
// building them.
func KeyDistributionCount(n, pebbles int) int {
	if n <= 0 {
		return 0
	}
	count := n + 1
	if n >= 2 && pebbles >= 2 {
		count += n * (n - 1) / 2
	}
	return count
}
