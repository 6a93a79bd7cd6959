package handler

// Handler defines the interface for line handlers
type Handler interface {
	// HandleLine formats and forwards a single raw line
	HandleLine(line string) error

	// Close closes the handler and releases resources
	Close() error
}

// Syncer is implemented by handlers and writers that buffer output.
type Syncer interface {
	Sync() error
}
