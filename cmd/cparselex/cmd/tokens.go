package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cparselex/cparselex/cursor"
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/internal/logging"
	"github.com/cparselex/cparselex/pipeline"
	"github.com/cparselex/cparselex/status"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>...",
	Short: "Dump the preprocessor token stream (stage 6) for one or more files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		logger := logging.New(logLevel)

		var errs status.Errors
		for _, path := range args {
			if err := dumpTokens(logrus.FieldLogger(logger), path); err != nil {
				errs.Add(err.(status.PositionedError))
			}
		}
		if errs.HasErrors() {
			return errs
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// dumpTokens runs one file through the pipeline, printing its token
// stream. A failure is returned as a status.PositionedError, cursored
// at the last event observed before the failure, so the caller can
// keep scanning the remaining files instead of aborting the whole run.
func dumpTokens(logger logrus.FieldLogger, path string) error {
	pl := pipeline.New(logger)

	var last cursor.Cursor
	if st := pl.SubscribePpScanner(func(ctx any, e *event.Event) status.Status {
		last = e.Cursor
		fmt.Println(describeToken(e))
		return status.OK
	}); !st.Ok() {
		return status.PositionedError{Status: st, Message: "subscribe"}
	}

	if st := pl.PushFile(path); !st.Ok() {
		return status.PositionedError{Status: st, Message: fmt.Sprintf("push %s", path)}
	}
	if st := pl.Run(); !st.Ok() {
		return status.PositionedError{Status: st, Cursor: last, Message: fmt.Sprintf("run %s", path)}
	}
	return nil
}

// describeToken renders a single preprocessor-token-level event as one
// line: its cursor, kind, and the payload relevant to that kind.
func describeToken(e *event.Event) string {
	switch e.Kind {
	case event.KindIdentifier:
		return fmt.Sprintf("%s  Identifier      %q", e.Cursor, e.Name)
	case event.KindRawInteger:
		return fmt.Sprintf("%s  Integer(%s)     %s", e.Cursor, e.IntKind, e.Digits)
	case event.KindRawFloat:
		return fmt.Sprintf("%s  Float           %s", e.Cursor, e.Digits)
	case event.KindRawString:
		return fmt.Sprintf("%s  String          %s", e.Cursor, e.Literal)
	case event.KindRawCharLit:
		return fmt.Sprintf("%s  CharLit         %s", e.Cursor, e.Literal)
	case event.KindPunctuator:
		return fmt.Sprintf("%s  Punctuator      %s", e.Cursor, e.Punct)
	case event.KindWhitespace, event.KindNewline, event.KindEOF:
		return fmt.Sprintf("%s  %s", e.Cursor, e.Kind)
	default:
		return fmt.Sprintf("%s  %s", e.Cursor, e.Kind)
	}
}
