// Package morph reconciles two vector outlines so that they can be smoothly
// interpolated into one another, an operation commonly known as shape
// morphing.
//
// Two subpaths can only be morphed if they consist of the same number of
// drawing commands and if the commands at each position are of the same
// kind. Hand-drawn shapes rarely satisfy this. [AutoFix] takes two arbitrary
// paths and makes one of their subpaths compatible, by finding a good
// correspondence between their commands, subdividing commands where one side
// has no counterpart, and converting commands to more general kinds where the
// kinds differ.
//
// # Paths and commands
//
// A [Path] consists of subpaths, each of which is a sequence of [Command]
// values starting with a MoveTo. Commands are akin to drawing commands in
// graphics APIs like PostScript or SVG: [MoveToKind], [LineToKind],
// [QuadToKind], [CubicToKind] and [ClosePathKind]. Each command knows the pen
// position it starts at, which makes it a self-contained segment that can be
// split ([Command.Split]), reversed ([Command.Reverse]) or reinterpreted as a
// more general kind ([Command.ConvertTo]).
//
// Paths are immutable. [Path.Reverse], [Path.ShiftBack], [Path.SplitBatch]
// and [Path.Convert] return new paths that share unchanged subpaths with the
// original. Use a [Builder] to construct paths; the svgpath subpackage parses
// SVG path data into paths and formats them back.
//
// # Alignment
//
// [AutoFix] works in four steps:
//
//   - Every rotation of the "from" subpath, and of its reversal, is
//     generated as a candidate.
//   - Each candidate is aligned with the "to" subpath using the
//     Needleman-Wunsch algorithm of the align subpackage, rating pairs of
//     commands with [Score]. The candidate with the highest score wins; ties
//     go to the candidate generated first.
//   - Positions where one side of the winning alignment has a gap are filled
//     by subdividing a neighboring command of that side. Runs of gaps are
//     filled with evenly spaced subdivisions of a single command.
//   - [AutoConvert] converts commands position by position so that both
//     sides agree on kinds.
//
// The search is exhaustive over the 2·(n−1) candidates of an n-command
// subpath, and each alignment takes O(n·m) time and space. This is
// intended for the small subpaths found in icons and illustrations. Setting
// [Options.Workers] aligns candidates concurrently without affecting the
// result.
//
// # Scoring
//
// [Score] rates two commands by the distance between their end points, as
// long as their kinds are compatible. Distances are measured in user units,
// which biases the search differently for small and large drawings. Use
// [ScaleForViewport] and [Options.DistanceScale] to normalize distances to
// the size of the drawing.
//
// # Residual mismatches
//
// Commands whose kinds can't be converted into one another survive
// [AutoConvert] unchanged. [Result.Status] and [Result.Mismatches] report
// them, and [Options.Strict] turns them into an error wrapping
// [ErrIrreconcilable].
package morph
