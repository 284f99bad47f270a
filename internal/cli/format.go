package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dashdo/internal/nest"
	"github.com/faizmokh/dashdo/internal/outline"
)

func newFmtCommand(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <list>",
		Short: "Print a list in canonical form with depth gaps closed.",
		Long: `Print a list in canonical form: one space around ";;", ISO dates and
depths renumbered so every child sits exactly one level below its parent.
Malformed blocks and text before the first entry are dropped, so --write
refuses to run while "check" reports problems.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.reader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var out []byte
			for _, item := range nest.Flatten(nest.Build(doc.Items())) {
				text, err := outline.FormatItem(item)
				if err != nil {
					return fmt.Errorf("entry %q: %w", item.Entry.Title, err)
				}
				out = append(out, text...)
				out = append(out, '\n')
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(out)
				return err
			}
			if n := len(doc.Result.Failures); n > 0 || len(doc.Result.Preamble) > 0 {
				return fmt.Errorf("%s: refusing to rewrite a list with %d malformed %s or leading text; run check",
					doc.Name, n, plural(n, "block", "blocks"))
			}
			if err := a.manager.WriteAtomic(doc.Name, out); err != nil {
				return err
			}
			a.reader.Invalidate(doc.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Formatted %s\n", doc.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the list file instead of printing")

	return cmd
}
