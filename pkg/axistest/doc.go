// Package axistest provides helpers for testing code built on package axis:
// fixed-size widgets, a counting factory, a harness that wires an engine
// with automatic cleanup, and geometry snapshots compared against golden
// files.
//
// # Snapshot Testing
//
// Capture and compare the geometry of an engine:
//
//	snap := axistest.Capture(engine)
//	snap.MatchesFile(t, "testdata/scrolled.snapshot.json")
//
// Update snapshots with:
//
//	SHEET_UPDATE_SNAPSHOTS=1 go test ./...
package axistest
