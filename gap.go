package morph

import "honnef.co/go/morph/align"

// slotInfo describes one position of an aligned command sequence.
type slotInfo struct {
	isGap     bool
	isNextGap bool
	// nextCmdIdx is the number of real commands up to and including this
	// position, i.e. the index in the unaligned sequence that new commands
	// for a gap here have to be inserted before.
	nextCmdIdx int
}

func slotInfos[T any](slots []align.Slot[T]) []slotInfo {
	out := make([]slotInfo, len(slots))
	next := 0
	for i, s := range slots {
		if !s.IsGap() {
			next++
		}
		out[i] = slotInfo{
			isGap:      s.IsGap(),
			isNextGap:  i+1 < len(slots) && slots[i+1].IsGap(),
			nextCmdIdx: next,
		}
	}
	return out
}

// gapStreaks groups runs of consecutive gaps.
func gapStreaks(infos []slotInfo) [][]slotInfo {
	var streaks [][]slotInfo
	var cur []slotInfo
	for _, info := range infos {
		if !info.isGap {
			continue
		}
		cur = append(cur, info)
		if !info.isNextGap {
			streaks = append(streaks, cur)
			cur = nil
		}
	}
	return streaks
}

// splitOps turns gap streaks into subdivisions of subpath i, which has n
// commands. A streak of length k splits one command at k evenly spaced
// parameters. Streak anchors are clamped to [1, n−1]: the aligner may ask
// for insertions before the MoveTo or after the last command, neither of
// which can be subdivided. Ops are returned from the last streak to the
// first.
func splitOps(i, n int, streaks [][]slotInfo) []SplitOp {
	ops := make([]SplitOp, 0, len(streaks))
	for s := len(streaks) - 1; s >= 0; s-- {
		streak := streaks[s]
		idx := clamp(streak[len(streak)-1].nextCmdIdx, 1, n-1)
		ts := make([]float64, len(streak))
		for k := range streak {
			ts[k] = float64(k+1) / float64(len(streak)+1)
		}
		ops = append(ops, SplitOp{SubPath: i, Index: idx, Ts: ts})
	}
	return ops
}

// fillGaps subdivides subpath i of p so that it gains one command per gap in
// slots. It returns the new path and the number of inserted commands.
func fillGaps(p Path, i int, slots []align.Slot[Command]) (Path, int) {
	streaks := gapStreaks(slotInfos(slots))
	ops := splitOps(i, p.SubPath(i).Len(), streaks)
	inserted := 0
	for _, op := range ops {
		inserted += len(op.Ts)
	}
	return p.SplitBatch(ops), inserted
}
