// Package ticket enumerates the bet-ticket combination space for each
// canonical bet type.
package ticket

import (
	"github.com/yourusername/keiba-engine/internal/models"
)

// Generate enumerates entrant-number combinations of the given size.
// Unordered generation yields C(n,k) sets, ordered generation yields
// P(n,k) sequences; both follow the lexicographic order of the input
// slice, which is assumed to hold distinct numbers. A size larger than
// the input, or a non-positive size, yields an empty result rather than
// an error: an unfillable ticket is simply not a ticket.
func Generate(numbers []int, size int, ordered bool) [][]int {
	if size <= 0 || size > len(numbers) {
		return nil
	}

	var result [][]int
	current := make([]int, 0, size)
	used := make([]bool, len(numbers))

	var build func(start int)
	build = func(start int) {
		if len(current) == size {
			combo := make([]int, size)
			copy(combo, current)
			result = append(result, combo)
			return
		}
		for i := start; i < len(numbers); i++ {
			if ordered && used[i] {
				continue
			}
			used[i] = true
			current = append(current, numbers[i])
			if ordered {
				build(0)
			} else {
				build(i + 1)
			}
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	build(0)

	return result
}

// Singles returns one ticket per entrant, for win and place bets.
func Singles(numbers []int) [][]int {
	return Generate(numbers, 1, false)
}

// Quinellas returns all unordered pairs, for quinella and wide bets.
func Quinellas(numbers []int) [][]int {
	return Generate(numbers, 2, false)
}

// Exactas returns all ordered pairs.
func Exactas(numbers []int) [][]int {
	return Generate(numbers, 2, true)
}

// Trios returns all unordered triples.
func Trios(numbers []int) [][]int {
	return Generate(numbers, 3, false)
}

// Trifectas returns all ordered triples.
func Trifectas(numbers []int) [][]int {
	return Generate(numbers, 3, true)
}

// ForBetType enumerates every ticket of the given type coverable by the
// entrant set.
func ForBetType(betType models.BetType, numbers []int) [][]int {
	return Generate(numbers, betType.Size(), betType.Ordered())
}
