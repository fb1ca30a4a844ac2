// Package pipeline wires the seven stages (raw-stack scanner through
// preprocessor token scanner) bottom-up into a single
// parser.AbstractParser, per spec.md §2 and §5. It is the one place in
// the module that knows the fixed stage order.
package pipeline

import (
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/parser"
	"github.com/cparselex/cparselex/stage/commentfilter"
	"github.com/cparselex/cparselex/stage/commentscanner"
	"github.com/cparselex/cparselex/stage/lineoverride"
	"github.com/cparselex/cparselex/stage/linewrap"
	"github.com/cparselex/cparselex/stage/ppscanner"
	"github.com/cparselex/cparselex/stage/rawstack"
	"github.com/cparselex/cparselex/stage/whitespace"
	"github.com/cparselex/cparselex/status"
)

// Pipeline is an assembled stage stack plus the run identity used to
// correlate its log lines, the way the donor threads a
// logrus.FieldLogger through DatabaseConfig.Open.
type Pipeline struct {
	*parser.AbstractParser

	RunID  uuid.UUID
	Logger logrus.FieldLogger
}

// New assembles a fresh seven-stage pipeline and returns the
// AbstractParser façade over its top (the preprocessor token scanner).
// logger may be nil, in which case logrus.StandardLogger() is used.
func New(logger logrus.FieldLogger) *Pipeline {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	runID, err := uuid.NewV4()
	if err != nil {
		// Fall back to the nil UUID; a missing crypto/rand source never
		// aborts a parse, it only degrades log correlation.
		runID = uuid.Nil
	}
	log := logger.WithField("run_id", runID.String())

	stage0 := rawstack.New()

	stage1 := lineoverride.New(stage0.Handle)
	stage0.Subscribe(nil, stage1.EventHandler())

	stage2 := linewrap.New(stage1.Handle)
	stage1.Subscribe(nil, stage2.EventHandler())

	stage3 := commentscanner.New(stage2.Handle)
	stage2.Subscribe(nil, stage3.EventHandler())

	stage4 := commentfilter.New(stage3.Handle)
	stage3.Subscribe(nil, stage4.EventHandler())

	stage5 := whitespace.New(stage4.Handle)
	stage4.Subscribe(nil, stage5.EventHandler())

	stage6 := ppscanner.New(stage5.Handle)
	stage5.Subscribe(nil, stage6.EventHandler())

	log.Debug("pipeline assembled: rawstack -> lineoverride -> linewrap -> commentscanner -> commentfilter -> whitespace -> ppscanner")

	return &Pipeline{
		AbstractParser: parser.New(stage6.Handle),
		RunID:          runID,
		Logger:         log,
	}
}

// LoggingEventHandler wraps h so every event it sees is also logged at
// debug level before being forwarded, tagged with this pipeline's run
// ID. Useful for SubscribePpScanner during development or a --verbose
// CLI flag; never wired by default since per-byte logging is too noisy
// for normal runs.
func (p *Pipeline) LoggingEventHandler(h event.Handler) event.Handler {
	return func(ctx any, e *event.Event) status.Status {
		p.Logger.WithField("kind", e.Kind.String()).WithField("cursor", e.Cursor.String()).Debug("event")
		return h(ctx, e)
	}
}
