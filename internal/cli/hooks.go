package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphedit/pkg/observability"
)

// installHooks routes graph, history and export events to logger.
func installHooks(logger *log.Logger) {
	observability.SetGraphHooks(logGraphHooks{logger})
	observability.SetHistoryHooks(logHistoryHooks{logger})
	observability.SetExportHooks(logExportHooks{logger})
}

type logGraphHooks struct{ logger *log.Logger }

func (h logGraphHooks) OnElementCreated(kind string, id uint64) {
	h.logger.Debug("created", "kind", kind, "id", id)
}

func (h logGraphHooks) OnElementRemoved(kind string, id uint64, cascaded int) {
	h.logger.Debug("removed", "kind", kind, "id", id, "cascaded", cascaded)
}

func (h logGraphHooks) OnChanged(elementCount int) {
	h.logger.Debug("graph changed", "elements", elementCount)
}

type logHistoryHooks struct{ logger *log.Logger }

func (h logHistoryHooks) OnRecord(description string, depth int) {
	h.logger.Debug("recorded", "edit", description, "depth", depth)
}

func (h logHistoryHooks) OnUndo(description string, err error) {
	if err != nil {
		h.logger.Warn("undo failed", "edit", description, "error", err)
		return
	}
	h.logger.Debug("undo", "edit", description)
}

func (h logHistoryHooks) OnRedo(description string, err error) {
	if err != nil {
		h.logger.Warn("redo failed", "edit", description, "error", err)
		return
	}
	h.logger.Debug("redo", "edit", description)
}

type logExportHooks struct{ logger *log.Logger }

func (h logExportHooks) OnExport(format string, size int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Error("export failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("exported", "format", format, "bytes", size, "took", duration.Round(time.Millisecond))
}
