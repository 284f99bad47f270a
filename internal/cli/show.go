package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dashdo/internal/outline"
)

func newListsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show every stored list with its entry count.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.reader.LoadAll(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(docs) == 0 {
				fmt.Fprintf(out, "No lists in %s\n", a.manager.BasePath())
				return nil
			}
			for _, doc := range docs {
				items := len(doc.Result.Items)
				fmt.Fprintf(out, "%s (%d %s", doc.Name, items, plural(items, "entry", "entries"))
				if n := len(doc.Result.Failures); n > 0 {
					fmt.Fprintf(out, ", %d malformed", n)
				}
				fmt.Fprintln(out, ")")
			}
			return nil
		},
	}
}

func newShowCommand(a *app) *cobra.Command {
	var (
		flat       bool
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show <list>",
		Short: "Print a list as a tree.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.reader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputJSON {
				return printJSON(out, doc.Items(), flat)
			}
			if len(doc.Items()) == 0 {
				fmt.Fprintf(out, "%s has no entries\n", doc.Name)
				return nil
			}
			if flat {
				printFlat(out, doc.Items())
			} else {
				printTree(out, doc.Items())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "Print entries with their depth instead of nesting them")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit entries as JSON")

	return cmd
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <list>",
		Short: "Report blocks that could not be parsed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.reader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return reportResult(cmd.OutOrStdout(), doc.Name, doc.Result)
		},
	}
}

func newParseCommand() *cobra.Command {
	var (
		flat       bool
		outputJSON bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse an outline file (or stdin) without storing it.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}

			var (
				data []byte
				err  error
			)
			if source == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(source)
			}
			if err != nil {
				return err
			}

			result := outline.Analyze(data)
			out := cmd.OutOrStdout()
			if outputJSON {
				if err := printJSON(out, result.Items, flat); err != nil {
					return err
				}
			} else if flat {
				printFlat(out, result.Items)
			} else {
				printTree(out, result.Items)
			}

			if strict {
				return reportResult(cmd.ErrOrStderr(), source, result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "Print entries with their depth instead of nesting them")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit entries as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any block is malformed")

	return cmd
}

func reportResult(out io.Writer, name string, result outline.Result) error {
	if len(result.Preamble) > 0 {
		fmt.Fprintf(out, "%s: ignored %d bytes before the first entry\n", name, len(result.Preamble))
	}
	if len(result.Failures) == 0 {
		fmt.Fprintf(out, "%s: %d %s, no problems\n", name, len(result.Items), plural(len(result.Items), "entry", "entries"))
		return nil
	}
	printFailures(out, result.Failures)
	return fmt.Errorf("%s: %d malformed %s", name, len(result.Failures), plural(len(result.Failures), "block", "blocks"))
}
