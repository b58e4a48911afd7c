// Package diagnostics renders a logger.Log to the terminal using
// charmbracelet/log's structured logger, the logging library
// open-platform-model-cli uses throughout its command layer.
package diagnostics

import (
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/solidgo/dom-expressions-go/internal/logger"
)

// Report prints every message to stderr, error-kind messages at Error
// level and warnings at Warn level, and returns true iff any error-kind
// message was printed (mirroring logger.Log.HasErrors).
func Report(filename string, msgs []logger.Msg) bool {
	out := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
		Prefix:          "domexpr",
	})

	hasErrors := false
	for _, msg := range msgs {
		fields := []interface{}{"file", filename, "loc", msg.Loc.Start}
		switch msg.Kind {
		case logger.KindError:
			hasErrors = true
			out.Error(msg.Text, fields...)
		case logger.KindWarning:
			out.Warn(msg.Text, fields...)
		}
	}
	return hasErrors
}
