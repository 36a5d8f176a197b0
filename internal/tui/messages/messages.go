package messages

import "randompick/internal/picker"

// SnapshotMsg carries an engine state change into the program.
type SnapshotMsg struct {
	Snapshot picker.Snapshot
}

// InputFileMsg carries the new contents of a followed items file.
type InputFileMsg struct {
	Text string
}

type ErrorMsg struct {
	Err error
}
