package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"fixclean/internal/fixture"
)

type cleanOptions struct {
	summary bool
}

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var opts cleanOptions

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Filter both documents and reconcile quotes into the secondary",
		Long: "Print the original lengths of the primary and secondary documents, strip\n" +
			"non-printable runes from both files, then overwrite the secondary with the\n" +
			"primary text after copying mismatched quote characters from the secondary.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, ctx, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Render a statistics table after the length line")
	return cmd
}

func runClean(cmd *cobra.Command, ctx *commandContext, opts cleanOptions) error {
	cleaner, runCtx, err := ctx.newCleaner(cmd)
	if err != nil {
		return err
	}

	result, runErr := cleaner.Run(runCtx)
	out := cmd.OutOrStdout()
	if result != nil {
		primary, secondary := result.Lengths()
		fmt.Fprintf(out, "%d %d\n", primary, secondary)
	}
	if runErr != nil {
		return runErr
	}
	if opts.summary {
		writeSummary(out, result)
	}
	return nil
}

func writeSummary(out io.Writer, result *fixture.Result) {
	headers := []string{"Document", "Original", "Filtered", "Dropped"}
	rows := make([][]string, 0, 2)
	var original, filtered int
	for _, stats := range []fixture.FileStats{result.Primary, result.Secondary} {
		rows = append(rows, []string{
			stats.Path,
			strconv.Itoa(stats.Original),
			strconv.Itoa(stats.Filtered),
			strconv.Itoa(stats.Dropped()),
		})
		original += stats.Original
		filtered += stats.Filtered
	}
	footer := []string{"Total", strconv.Itoa(original), strconv.Itoa(filtered), strconv.Itoa(original - filtered)}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight}
	fmt.Fprintln(out, renderTable(headers, rows, footer, aligns))
	fmt.Fprintf(out, "Quotes reconciled: %d\n", result.Quotes.Replaced)
	fmt.Fprintf(out, "Mismatches tolerated: %d\n", result.Quotes.Tolerated)
}
