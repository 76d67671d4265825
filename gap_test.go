package morph

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/morph/align"
)

func slots(vals ...int) []align.Slot[int] {
	var out []align.Slot[int]
	idx := 0
	for _, v := range vals {
		if v < 0 {
			out = append(out, align.Gap[int]())
			continue
		}
		out = append(out, align.Slot[int]{Value: v, Index: idx})
		idx++
	}
	return out
}

func TestSlotInfos(t *testing.T) {
	got := slotInfos(slots(1, -1, -1, 2, -1))
	want := []slotInfo{
		{isGap: false, isNextGap: true, nextCmdIdx: 1},
		{isGap: true, isNextGap: true, nextCmdIdx: 1},
		{isGap: true, isNextGap: false, nextCmdIdx: 1},
		{isGap: false, isNextGap: true, nextCmdIdx: 2},
		{isGap: true, isNextGap: false, nextCmdIdx: 2},
	}
	diff(t, want, got, cmp.AllowUnexported(slotInfo{}))
}

func TestGapStreaks(t *testing.T) {
	streaks := gapStreaks(slotInfos(slots(-1, 1, 2, -1, -1, 3, -1)))
	var lens []int
	for _, s := range streaks {
		lens = append(lens, len(s))
	}
	diff(t, []int{1, 2, 1}, lens)

	if got := gapStreaks(slotInfos(slots(1, 2, 3))); len(got) != 0 {
		t.Errorf("got %d streaks without gaps", len(got))
	}
}

func TestSplitOps(t *testing.T) {
	streaks := gapStreaks(slotInfos(slots(-1, 1, 2, -1, -1, 3, 4, -1)))
	got := splitOps(2, 4, streaks)
	want := []SplitOp{
		// Trailing gap, pulled in from 4 to 3.
		{SubPath: 2, Index: 3, Ts: []float64{0.5}},
		{SubPath: 2, Index: 2, Ts: []float64{1.0 / 3.0, 2.0 / 3.0}},
		// Leading gap, pulled in from 0 to 1.
		{SubPath: 2, Index: 1, Ts: []float64{0.5}},
	}
	diff(t, want, got)
}

func TestFillGaps(t *testing.T) {
	p := triangle()
	cmds := p.Commands(0)
	al := []align.Slot[Command]{
		{Value: cmds[0], Index: 0},
		{Value: cmds[1], Index: 1},
		align.Gap[Command](),
		align.Gap[Command](),
		{Value: cmds[2], Index: 2},
		{Value: cmds[3], Index: 3},
	}
	got, inserted := fillGaps(p, 0, al)
	if inserted != 2 {
		t.Errorf("inserted %d commands, want 2", inserted)
	}
	// The gaps follow the first line, so the second line is split in three.
	diff(t, []Kind{MoveToKind, LineToKind, LineToKind, LineToKind, LineToKind, ClosePathKind}, kinds(got, 0))
	diff(t, Pt(10, 10.0/3.0), got.SubPath(0).At(2).End(), pointComparer)
	diff(t, Pt(10, 20.0/3.0), got.SubPath(0).At(3).End(), pointComparer)
}
