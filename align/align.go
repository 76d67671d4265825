// Package align computes optimal global alignments of two sequences using the
// Needleman-Wunsch algorithm.
//
// The aligner knows nothing about the elements it aligns. Callers supply a
// scoring function that rates a pairing of two elements; higher is better.
// Inserting or deleting an element costs [Indel].
//
// Backtracking is deterministic: when several moves reproduce a cell's value,
// a diagonal move (match or substitution) is preferred over consuming an
// element of the first sequence only, which in turn is preferred over
// consuming an element of the second sequence only.
package align

import (
	"fmt"
	"slices"
)

// Indel is the score of aligning an element with a gap.
const Indel = 0

// Slot is one position of an aligned sequence. It either holds an element of
// the input sequence or is a gap.
type Slot[T any] struct {
	Value T
	// Index is the position of Value in the input sequence, or -1 for a gap.
	Index int
}

// Gap returns an empty slot.
func Gap[T any]() Slot[T] {
	return Slot[T]{Index: -1}
}

// IsGap reports whether the slot is empty.
func (s Slot[T]) IsGap() bool { return s.Index < 0 }

func (s Slot[T]) String() string {
	if s.IsGap() {
		return "-"
	}
	return fmt.Sprint(s.Value)
}

// Alignment is the result of [Align]. A and B have the same length and never
// both hold a gap at the same position.
type Alignment[T any] struct {
	A     []Slot[T]
	B     []Slot[T]
	Score float64
}

// Len returns the number of positions in the alignment.
func (al Alignment[T]) Len() int { return len(al.A) }

// Align aligns a and b, scoring each pairing of elements with score.
//
// It runs in O(len(a)·len(b)) time and space.
func Align[T any](a, b []T, score func(x, y T) float64) Alignment[T] {
	m, n := len(a), len(b)
	cols := n + 1
	cells := make([]float64, (m+1)*cols)
	at := func(i, j int) *float64 { return &cells[i*cols+j] }

	for i := 0; i <= m; i++ {
		*at(i, 0) = -float64(i)
	}
	for j := 0; j <= n; j++ {
		*at(0, j) = -float64(j)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			match := *at(i-1, j-1) + score(a[i-1], b[j-1])
			ins := *at(i, j-1) + Indel
			del := *at(i-1, j) + Indel
			*at(i, j) = max(match, ins, del)
		}
	}

	var outA, outB []Slot[T]
	i, j := m, n
	for i > 0 || j > 0 {
		cur := *at(i, j)
		switch {
		case i > 0 && j > 0 && cur == *at(i-1, j-1)+score(a[i-1], b[j-1]):
			i--
			j--
			outA = append(outA, Slot[T]{Value: a[i], Index: i})
			outB = append(outB, Slot[T]{Value: b[j], Index: j})
		case i > 0 && (j == 0 || cur == *at(i-1, j)+Indel):
			// Along the first column, consuming from a is the only move.
			i--
			outA = append(outA, Slot[T]{Value: a[i], Index: i})
			outB = append(outB, Gap[T]())
		default:
			j--
			outA = append(outA, Gap[T]())
			outB = append(outB, Slot[T]{Value: b[j], Index: j})
		}
	}
	if len(outA) != len(outB) {
		panic(fmt.Sprintf("align: unequal alignment lengths %d and %d", len(outA), len(outB)))
	}
	slices.Reverse(outA)
	slices.Reverse(outB)

	return Alignment[T]{
		A:     outA,
		B:     outB,
		Score: *at(m, n),
	}
}
