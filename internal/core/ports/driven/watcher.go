package driven

import "context"

// FileWatcher reports changes to a file.
type FileWatcher interface {
	// Watch blocks until ctx is done, calling onChange after the file at path
	// has been written, created or replaced. Bursts of events are coalesced.
	Watch(ctx context.Context, path string, onChange func()) error
}
