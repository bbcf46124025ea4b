package scene

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-math/internal/core"
)

// LogNotices writes the notices raised by one tick to the logger.
// A nil logger discards them.
func LogNotices(logger *log.Logger, notices []core.Notice) {
	if logger == nil {
		return
	}
	for _, n := range notices {
		switch n.Kind {
		case core.NoticeCommitFailed:
			logger.Error("cannot save score", "name", n.Detail, "error", n.Err)
		case core.NoticeModeChanged:
			logger.Debug("mode changed", "mode", n.Detail)
		default:
			logger.Info(n.Kind.String(), "detail", n.Detail)
		}
	}
}
