package morph

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/morph/align"
)

// Status summarizes whether reconciliation produced a morphable pair.
type Status int

const (
	// Reconciled means every position has commands of the same kind.
	Reconciled Status = iota
	// Irreconcilable means some positions still pair commands whose kinds
	// cannot be converted into one another. See [Result.Mismatches].
	Irreconcilable
)

// Options configures [AutoFix] and [AutoConvert]. The zero value is valid
// and reproduces the unnormalized, sequential behavior.
type Options struct {
	// DistanceScale divides end point distances before scoring. Zero and
	// negative values mean 1. See [ScaleForViewport].
	DistanceScale float64
	// Workers bounds the number of candidates aligned concurrently. Values
	// below 2 align sequentially. The result does not depend on Workers.
	Workers int
	// Strict makes an irreconcilable result an error wrapping
	// [ErrIrreconcilable]. The result is returned either way.
	Strict bool
	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

func (opts Options) scale() float64 {
	if opts.DistanceScale <= 0 {
		return 1
	}
	return opts.DistanceScale
}

func (opts Options) logger() *slog.Logger {
	if opts.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return opts.Logger
}

// Result is the outcome of [AutoFix] or [AutoConvert].
type Result struct {
	From Path
	To   Path
	// Status reports whether every position ended up with equal kinds.
	Status Status
	// Mismatches lists the command indices whose kinds still differ.
	Mismatches []int

	// The following fields are only set by AutoFix.

	// Candidate is the reordering of the "from" subpath that aligned best.
	Candidate Candidate
	// Alignment is the winning alignment, before gaps were filled.
	Alignment align.Alignment[Command]
	// Score is the alignment's score.
	Score float64
	// FromInserted and ToInserted count the commands added by subdivision.
	FromInserted int
	ToInserted   int
}

// AutoFix makes subpath i of from and to compatible for morphing.
//
// It tries every rotation of the "from" subpath and of its reversal, aligns
// each against the "to" subpath and keeps the best alignment; ties go to the
// candidate generated first. Gaps in the alignment are then filled by
// subdividing commands of the respective path, and finally mismatched kinds
// are converted by [AutoConvert].
func AutoFix(i int, from, to Path, opts Options) (Result, error) {
	const op = "autofix"
	if err := checkSubPath(op, i, from, to); err != nil {
		return Result{}, err
	}
	log := opts.logger()

	cands := candidates(from, i)
	log.Debug("candidates generated", "subpath", i, "count", len(cands))

	toCmds := to.Commands(i)
	scale := opts.scale()
	score := func(a, b Command) float64 { return scoreScaled(a, b, scale) }
	alignments := alignCandidates(cands, i, toCmds, score, opts.Workers)

	best := 0
	for k := 1; k < len(alignments); k++ {
		if alignments[k].Score > alignments[best].Score {
			best = k
		}
	}
	winner, al := cands[best], alignments[best]
	log.Debug("best alignment",
		"subpath", i,
		"candidate", winner.Index,
		"reversed", winner.Reversed,
		"shift", winner.Shift,
		"score", al.Score)

	fromFilled, fromInserted := fillGaps(winner.path, i, al.A)
	toFilled, toInserted := fillGaps(to, i, al.B)
	log.Debug("gaps resolved", "subpath", i, "from_inserted", fromInserted, "to_inserted", toInserted)

	res, err := AutoConvert(i, fromFilled, toFilled, opts)
	res.Candidate = winner.Candidate
	res.Alignment = al
	res.Score = al.Score
	res.FromInserted = fromInserted
	res.ToInserted = toInserted
	if err != nil {
		var rerr *ReconcileError
		if errors.As(err, &rerr) {
			rerr.Op = op
		}
		return res, err
	}
	return res, nil
}

func alignCandidates(cands []candidate, i int, to []Command, score func(a, b Command) float64, workers int) []align.Alignment[Command] {
	out := make([]align.Alignment[Command], len(cands))
	if workers < 2 {
		for k, c := range cands {
			out[k] = align.Align(c.path.Commands(i), to, score)
		}
		return out
	}
	// Each alignment owns its slot; the reduction in AutoFix stays sequential.
	var g errgroup.Group
	g.SetLimit(workers)
	for k, c := range cands {
		g.Go(func() error {
			out[k] = align.Align(c.path.Commands(i), to, score)
			return nil
		})
	}
	// Alignment cannot fail; Wait only joins the goroutines.
	g.Wait()
	return out
}

// AutoConvert makes the kinds of subpath i of from and to agree position by
// position. Where the kinds differ, the "to" command is converted to the
// "from" kind if possible; then the "from" command is converted to the
// (possibly updated) "to" kind if possible. Positions where neither side can
// be converted are reported in [Result.Mismatches].
func AutoConvert(i int, from, to Path, opts Options) (Result, error) {
	const op = "autoconvert"
	if err := checkSubPath(op, i, from, to); err != nil {
		return Result{}, err
	}
	if from.SubPath(i).Len() != to.SubPath(i).Len() {
		return Result{}, &ReconcileError{
			Op:      op,
			SubPath: i,
			Err: fmt.Errorf("%w: %d and %d", ErrLengthMismatch,
				from.SubPath(i).Len(), to.SubPath(i).Len()),
		}
	}
	log := opts.logger()

	var converted int
	convert := func(dst, ref Path) Path {
		for j, c := range dst.SubPath(i).All() {
			want := ref.SubPath(i).At(j).Kind
			if c.Kind == want || !c.CanConvertTo(want) {
				continue
			}
			dst = dst.Convert(i, j, want)
			converted++
		}
		return dst
	}
	to = convert(to, from)
	from = convert(from, to)

	res := Result{From: from, To: to}
	for j, c := range from.SubPath(i).All() {
		if c.Kind != to.SubPath(i).At(j).Kind {
			res.Mismatches = append(res.Mismatches, j)
		}
	}
	if len(res.Mismatches) > 0 {
		res.Status = Irreconcilable
	}
	log.Debug("converted", "subpath", i, "conversions", converted, "status", res.Status, "mismatches", res.Mismatches)

	if opts.Strict && res.Status == Irreconcilable {
		return res, &ReconcileError{
			Op:      op,
			SubPath: i,
			Err:     fmt.Errorf("%w at commands %v", ErrIrreconcilable, slices.Clone(res.Mismatches)),
		}
	}
	return res, nil
}

func checkSubPath(op string, i int, paths ...Path) error {
	for _, p := range paths {
		if i < 0 || i >= p.Len() {
			return &ReconcileError{Op: op, SubPath: i, Err: ErrSubPathIndex}
		}
		if p.SubPath(i).Len() < 2 {
			return &ReconcileError{Op: op, SubPath: i, Err: ErrDegenerateSubPath}
		}
	}
	return nil
}
