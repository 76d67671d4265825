package morph

// Candidate identifies one reordering of the "from" subpath tried by
// [AutoFix].
type Candidate struct {
	// Index is the position in generation order. Forward shifts come first,
	// then the shifts of the reversed subpath.
	Index int
	// Reversed reports whether the subpath was reversed before shifting.
	Reversed bool
	// Shift is the offset passed to [Path.ShiftBack].
	Shift int
}

type candidate struct {
	Candidate
	path Path
}

// candidates returns every rotation of subpath i of p, followed by every
// rotation of its reversal. A subpath of n commands yields 2·(n−1)
// candidates.
func candidates(p Path, i int) []candidate {
	n := p.SubPath(i).Len()
	out := make([]candidate, 0, 2*max(0, n-1))
	for _, reversed := range []bool{false, true} {
		base := p
		if reversed {
			base = p.Reverse(i)
		}
		for shift := 0; shift < n-1; shift++ {
			out = append(out, candidate{
				Candidate: Candidate{Index: len(out), Reversed: reversed, Shift: shift},
				path:      base.ShiftBack(i, shift),
			})
		}
	}
	return out
}
