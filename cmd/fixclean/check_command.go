package main

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"fixclean/internal/fixture"
)

var errCheckFailed = errors.New("fixture pair is not clean")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report what a clean run would change without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaner, runCtx, err := ctx.newCleaner(cmd)
			if err != nil {
				return err
			}
			result, err := cleaner.Check(runCtx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report := newStatusReport(out)
			renderCheck(report, result)
			report.overall("clean run would change nothing", "clean run would rewrite files", "clean run would fail")
			report.writeTo(out)

			if strict && !result.Clean() {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when a clean run would change either file")
	return cmd
}

func renderCheck(report *statusReport, result *fixture.Result) {
	report.section("Fixture check")
	report.add("Directory", statusInfo, "%s", filepath.Dir(result.Primary.Path))

	for _, stats := range []fixture.FileStats{result.Primary, result.Secondary} {
		name := filepath.Base(stats.Path)
		switch {
		case stats.Dropped() > 0:
			report.add(name, statusWarn, "%d of %d runes would be dropped", stats.Dropped(), stats.Original)
		case stats.NewlinesTranslated:
			report.add(name, statusWarn, "line endings would be rewritten to \\n")
		default:
			report.add(name, statusOK, "%d runes, all printable", stats.Original)
		}
	}

	primary, secondary := result.Primary.Filtered, result.Secondary.Filtered
	switch {
	case result.Mismatch != nil:
		report.add("Lengths", statusError, "reconciliation would fail at index %d (primary %d runes, secondary %d)",
			result.Mismatch.Index, primary, secondary)
		return
	case primary == secondary:
		report.add("Lengths", statusOK, "equal after filtering (%d runes)", primary)
	default:
		report.add("Lengths", statusWarn, "secondary has %d trailing runes that will be discarded", secondary-primary)
	}

	if result.Quotes.Replaced == 0 {
		report.add("Quotes", statusOK, "nothing to reconcile")
	} else {
		report.add("Quotes", statusWarn, "%d to reconcile, first at index %d", result.Quotes.Replaced, result.Quotes.FirstReplaced)
	}
	if result.Quotes.Tolerated == 0 {
		report.add("Mismatches", statusOK, "no non-quote differences")
	} else {
		report.add("Mismatches", statusWarn, "%d non-quote differences; secondary will be overwritten with primary text", result.Quotes.Tolerated)
	}
}
