package handler

import "go.uber.org/multierr"

// MultiHandler sends each line to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// HandleLine sends line to every handler. A failing handler does not
// stop the others; all errors are combined.
func (h *MultiHandler) HandleLine(line string) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.HandleLine(line))
	}
	return err
}

// Sync syncs every handler that supports it
func (h *MultiHandler) Sync() error {
	var err error
	for _, handler := range h.handlers {
		if s, ok := handler.(Syncer); ok {
			err = multierr.Append(err, s.Sync())
		}
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
