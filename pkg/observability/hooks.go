// Package observability provides hooks for logging and metrics of graph edits.
//
// The core packages ([graph], [edit], [io]) stay free of any logging or
// metrics backend. Instead they report events to hook interfaces registered
// at startup; the defaults are no-ops.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&logGraphHooks{logger})
//	    observability.SetHistoryHooks(&logHistoryHooks{logger})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Graph().OnElementCreated("vertex", id)
//
// Graph and history hooks are invoked synchronously on the caller's goroutine,
// after the mutation they describe has been applied.
//
// [graph]: github.com/matzehuels/graphedit/pkg/graph
// [edit]: github.com/matzehuels/graphedit/pkg/edit
// [io]: github.com/matzehuels/graphedit/pkg/io
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives structural events from a graph.
type GraphHooks interface {
	// OnElementCreated records a vertex or edge added to a graph.
	OnElementCreated(kind string, id uint64)

	// OnElementRemoved records an element removal. cascaded is the number of
	// incident edges removed along with a vertex (0 for edges).
	OnElementRemoved(kind string, id uint64, cascaded int)

	// OnChanged records one change notification and the element count at that time.
	OnChanged(elementCount int)
}

// =============================================================================
// History Hooks
// =============================================================================

// HistoryHooks receives events from the undo/redo history.
type HistoryHooks interface {
	// OnRecord records an edit pushed onto the history. depth is the undo stack size.
	OnRecord(description string, depth int)

	// OnUndo records an undo attempt.
	OnUndo(description string, err error)

	// OnRedo records a redo attempt.
	OnRedo(description string, err error)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from exporters.
type ExportHooks interface {
	// OnExport records a completed export attempt.
	OnExport(format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnElementCreated(string, uint64)      {}
func (NoopGraphHooks) OnElementRemoved(string, uint64, int) {}
func (NoopGraphHooks) OnChanged(int)                        {}

// NoopHistoryHooks is a no-op implementation of HistoryHooks.
type NoopHistoryHooks struct{}

func (NoopHistoryHooks) OnRecord(string, int) {}
func (NoopHistoryHooks) OnUndo(string, error) {}
func (NoopHistoryHooks) OnRedo(string, error) {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExport(string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks   GraphHooks   = NoopGraphHooks{}
	historyHooks HistoryHooks = NoopHistoryHooks{}
	exportHooks  ExportHooks  = NoopExportHooks{}
	hooksMu      sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any graph is built.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetHistoryHooks registers custom history hooks.
func SetHistoryHooks(h HistoryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		historyHooks = h
	}
}

// SetExportHooks registers custom export hooks.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// History returns the registered history hooks.
func History() HistoryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return historyHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	historyHooks = NoopHistoryHooks{}
	exportHooks = NoopExportHooks{}
}
