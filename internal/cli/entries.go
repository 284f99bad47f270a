package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dashdo/internal/lists"
	"github.com/faizmokh/dashdo/internal/outline"
	"github.com/faizmokh/dashdo/internal/style"
)

func newAddCommand(a *app) *cobra.Command {
	var (
		depthFlag int
		afterFlag int
		todoFlag  bool
		doneFlag  bool
		dateFlag  string
		bodyFlag  string
	)

	cmd := &cobra.Command{
		Use:   "add <list> <title...>",
		Short: "Append an entry to a list.",
		Long:  "add appends an entry at the end of the list, creating the list if needed. Use --depth to nest it under the entry above, or --after N to place it after entry N and the entries nested below it.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if todoFlag && doneFlag {
				return fmt.Errorf("--todo and --done are mutually exclusive")
			}
			title := joinTitle(args[1:])
			if title == "" {
				return fmt.Errorf("title is required")
			}
			dt, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			entry := outline.Entry{Title: title, DateTime: dt, Children: []outline.Entry{}}
			switch {
			case todoFlag:
				entry.Todo = outline.Bool(false)
			case doneFlag:
				entry.Todo = outline.Bool(true)
			}
			if bodyFlag != "" {
				entry.Body = outline.String(bodyFlag)
			}

			item := outline.Item{Depth: depthFlag, Entry: entry}
			if afterFlag > 0 {
				index, err := a.writer.Insert(cmd.Context(), args[0], afterFlag, item)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added entry %d: %s\n", index, style.Entry(entry))
				return nil
			}
			if err := a.writer.Append(cmd.Context(), args[0], item); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", style.Entry(entry))
			return nil
		},
	}

	cmd.Flags().IntVar(&depthFlag, "depth", 1, "Nesting depth (number of -- markers)")
	cmd.Flags().IntVar(&afterFlag, "after", 0, "Insert after this entry and its nested entries instead of at the end")
	cmd.Flags().BoolVar(&todoFlag, "todo", false, "Add an unchecked checkbox")
	cmd.Flags().BoolVar(&doneFlag, "done", false, "Add a checked checkbox")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Date stamp as YYYY-MM-DD with optional THH:MM")
	cmd.Flags().StringVar(&bodyFlag, "body", "", "Description placed under the title")

	return cmd
}

func newToggleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <list> <index>",
		Short: "Flip the checkbox of an entry by index.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			item, err := a.writer.Toggle(cmd.Context(), args[0], index)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Toggled entry %d: %s\n", index, style.Entry(item.Entry))
			return nil
		},
	}
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list> <index>",
		Short: "Remove an entry by index.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			item, err := a.writer.Delete(cmd.Context(), args[0], index)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d: %s\n", index, style.Entry(item.Entry))
			return nil
		},
	}
}

func newEditCommand(a *app) *cobra.Command {
	var (
		dateFlag   string
		clearDate  bool
		bodyFlag   string
		clearBody  bool
		statusFlag string
	)

	cmd := &cobra.Command{
		Use:   "edit <list> <index> [title...]",
		Short: "Modify an entry by index.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			doc, err := a.reader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if index > len(doc.Items()) {
				return lists.ErrInvalidIndex
			}

			updated := doc.Items()[index-1].Entry
			if title := joinTitle(args[2:]); title != "" {
				updated.Title = title
			}

			switch {
			case clearDate:
				updated.DateTime = nil
			case dateFlag != "":
				dt, err := parseDateFlag(dateFlag)
				if err != nil {
					return err
				}
				updated.DateTime = dt
			}

			switch {
			case clearBody:
				updated.Body = nil
			case bodyFlag != "":
				updated.Body = outline.String(bodyFlag)
			}

			if updated.Todo, err = parseStatusFlag(statusFlag, updated.Todo); err != nil {
				return err
			}

			if err := a.writer.Edit(cmd.Context(), args[0], index, updated); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d: %s\n", index, style.Entry(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "New date stamp (default: unchanged)")
	cmd.Flags().BoolVar(&clearDate, "clear-date", false, "Remove the date stamp")
	cmd.Flags().StringVar(&bodyFlag, "body", "", "New description (default: unchanged)")
	cmd.Flags().BoolVar(&clearBody, "clear-body", false, "Remove the description")
	cmd.Flags().StringVar(&statusFlag, "status", "", "todo, done or none (default: unchanged)")

	return cmd
}
