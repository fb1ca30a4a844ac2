package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/internal/logging"
	"github.com/cparselex/cparselex/pipeline"
	"github.com/cparselex/cparselex/status"
)

var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Re-emit a file byte-for-byte through the raw-stack scanner (stage 0)",
	Long:  "Pushes a single file through stage 0 only and writes every RawChar byte back to stdout, verifying the pipeline's byte-conservation property.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		logger := logging.New(logLevel)
		pl := pipeline.New(logrus.FieldLogger(logger))

		if st := pl.SubscribeRawStack(func(ctx any, e *event.Event) status.Status {
			if e.Kind == event.KindRawChar {
				_ = os.Stdout.WriteByte(e.Byte)
			}
			return status.OK
		}); !st.Ok() {
			return fmt.Errorf("subscribe: %s", st)
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
	rootCmd.AddCommand(catCmd)
}
