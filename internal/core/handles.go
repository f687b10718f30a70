package core

import (
	"sync/atomic"

	"github.com/brettbedarf/fsgraph/internal/dirfs"
	"github.com/brettbedarf/fsgraph/internal/util"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
)

// handleRegistry tracks directory handles held open by scans.
// Handles may be released from a runtime cleanup goroutine, so the registry
// must be safe for concurrent use.
type handleRegistry struct {
	open   *xsync.Map[uuid.UUID, string] // handle ID -> directory path
	logger util.Logger
}

func newHandleRegistry() *handleRegistry {
	return &handleRegistry{
		open:   xsync.NewMap[uuid.UUID, string](),
		logger: util.GetLogger("handles"),
	}
}

// track registers dir as open and returns its handle
func (r *handleRegistry) track(path string, dir dirfs.DirHandle) *scanHandle {
	h := &scanHandle{
		id:       uuid.New(),
		path:     path,
		dir:      dir,
		registry: r,
	}
	r.open.Store(h.id, path)
	r.logger.Trace().Str("handle", h.id.String()).Str("path", path).Msg("Directory handle opened")
	return h
}

// Len returns the number of handles not yet released
func (r *handleRegistry) Len() int {
	return r.open.Size()
}

type scanHandle struct {
	id       uuid.UUID
	path     string
	dir      dirfs.DirHandle
	released atomic.Bool
	registry *handleRegistry
}

// release closes the directory once; later calls are no-ops
func (h *scanHandle) release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	logger := h.registry.logger
	if err := h.dir.Close(); err != nil {
		logger.Warn().Err(err).Str("path", h.path).Msg("Failed to close directory handle")
	}
	h.registry.open.Delete(h.id)
	logger.Trace().Str("handle", h.id.String()).Str("path", h.path).Msg("Directory handle released")
}
