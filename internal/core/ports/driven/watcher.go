package driven

import "context"

// Watcher reports settled changes to files under a directory.
type Watcher interface {
	// Watch blocks until ctx is cancelled, calling onChange with the
	// paths that changed once they have been quiet for the debounce window.
	Watch(ctx context.Context, dir string, onChange func(paths []string)) error
}
