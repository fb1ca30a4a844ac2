package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/internal/logging"
	"github.com/cparselex/cparselex/parser"
	"github.com/cparselex/cparselex/pipeline"
	"github.com/cparselex/cparselex/status"
)

var dumpStage string

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Pretty-print every event a chosen stage emits for a file",
	Long:  "Subscribes at --stage (default ppscanner) and repr-dumps each event struct as it is broadcast, for inspecting a stage's exact output shape.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		logger := logging.New(logLevel)
		pl := pipeline.New(logrus.FieldLogger(logger))

		sink := func(ctx any, e *event.Event) status.Status {
			fmt.Println(repr.String(e))
			return status.OK
		}

		if st := subscribeByName(pl.AbstractParser, dumpStage, sink); !st.Ok() {
			return fmt.Errorf("subscribe at stage %q: %s", dumpStage, st)
		}

		if st := pl.PushFile(args[0]); !st.Ok() {
			return fmt.Errorf("push %s: %s", args[0], st)
		}
		if st := pl.Run(); !st.Ok() {
			return fmt.Errorf("run: %s", st)
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpStage, "stage", "ppscanner",
		"pipeline stage to subscribe at: rawstack, lineoverride, linewrap, commentscanner, commentfilter, whitespace, ppscanner")
	rootCmd.AddCommand(dumpCmd)
}

func subscribeByName(p *parser.AbstractParser, name string, h event.Handler) status.Status {
	switch name {
	case "rawstack":
		return p.SubscribeRawStack(h)
	case "lineoverride":
		return p.SubscribeLineOverride(h)
	case "linewrap":
		return p.SubscribeLineWrap(h)
	case "commentscanner":
		return p.SubscribeCommentScanner(h)
	case "commentfilter":
		return p.SubscribeCommentFilter(h)
	case "whitespace":
		return p.SubscribeWhitespace(h)
	case "ppscanner":
		return p.SubscribePpScanner(h)
	default:
		return status.EntryNotFound
	}
}
