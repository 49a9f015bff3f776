package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/eveindustry-go/internal/application/industry/commands"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/queries"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
)

// NewTaskCommand creates the task command with subcommands
func NewTaskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Inspect and store industry tasks",
		Long: `Inspect industry task files and manage stored tasks.

Task files are YAML documents rooted at "task":

  task:
    type: manufacturing
    blueprint: 691
    runs: 10

Examples:
  eveindustry task show rifters.yaml
  eveindustry task show --id <task-id> --tree
  eveindustry task store rifters.yaml --name rifters
  eveindustry task list
  eveindustry task export <task-id> rifters.yaml
  eveindustry task delete <task-id>`,
	}

	cmd.AddCommand(newTaskShowCommand())
	cmd.AddCommand(newTaskStoreCommand())
	cmd.AddCommand(newTaskListCommand())
	cmd.AddCommand(newTaskExportCommand())
	cmd.AddCommand(newTaskDeleteCommand())

	return cmd
}

func newTaskShowCommand() *cobra.Command {
	var (
		id   string
		tree bool
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Show the netted materials and economics of a task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &queries.ShowTaskQuery{ID: id}
			if len(args) == 1 {
				query.Path = args[0]
			}
			if query.Path == "" && query.ID == "" {
				return fmt.Errorf("a task file or --id is required")
			}

			app, ctx, err := openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := send[*queries.ShowTaskResponse](ctx, app, query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSummary(out, resp.Name, resp.Summary)
			if tree {
				f := NewTreeFormatter(false)
				fmt.Fprintln(out)
				fmt.Fprint(out, f.FormatTree(resp.Task))
				fmt.Fprintln(out, f.FormatTreeSummary(resp.Task))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Show a stored task instead of a file")
	cmd.Flags().BoolVar(&tree, "tree", false, "Also print the task hierarchy")

	return cmd
}

func newTaskStoreCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "store <file>",
		Short: "Store a task file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := send[*commands.StoreTaskResponse](ctx, app, &commands.StoreTaskCommand{
				Path: args[0],
				Name: name,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s task %q as %s\n",
				resp.Document.Kind, resp.Document.Name, resp.Document.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name (default: file name)")

	return cmd
}

func newTaskListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := send[*queries.ListTasksResponse](ctx, app, &queries.ListTasksQuery{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(resp.Tasks) == 0 {
				fmt.Fprintln(out, "No stored tasks")
				return nil
			}
			fmt.Fprintf(out, "%-36s  %-14s  %-20s  %s\n", "ID", "KIND", "UPDATED", "NAME")
			for _, t := range resp.Tasks {
				fmt.Fprintf(out, "%-36s  %-14s  %-20s  %s\n",
					t.ID, t.Kind, t.UpdatedAt.Format("2006-01-02 15:04:05"), t.Name)
			}
			return nil
		},
	}
}

func newTaskExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <task-id> <file>",
		Short: "Write a stored task to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := send[*commands.ExportTaskResponse](ctx, app, &commands.ExportTaskCommand{
				ID:   args[0],
				Path: args[1],
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", args[0], resp.Path)
			return nil
		},
	}
}

func newTaskDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a stored task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := send[*commands.DeleteTaskResponse](ctx, app, &commands.DeleteTaskCommand{ID: args[0]}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func printSummary(out io.Writer, name string, s services.Summary) {
	fmt.Fprintf(out, "Task:      %s (%s)\n", name, s.Kind)
	fmt.Fprintf(out, "Duration:  %s\n", formatDuration(s.Duration))

	printMaterials(out, "Produced", s.Produced)
	printMaterials(out, "Required", s.Required)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Income:    %s\n", s.Income.StringFixed(2))
	fmt.Fprintf(out, "Expense:   %s (extra %s)\n", s.Expense.StringFixed(2), s.ExtraExpense.StringFixed(2))
	fmt.Fprintf(out, "Profit:    %s\n", s.Profit.StringFixed(2))
}

func printMaterials(out io.Writer, title string, lines []services.MaterialLine) {
	fmt.Fprintf(out, "\n%s:\n", title)
	if len(lines) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, l := range lines {
		marketText := "no market"
		if l.HasMarket {
			marketText = l.Market.String()
		}
		fmt.Fprintf(out, "  %12d x %-32s %-20s %16s\n",
			l.Amount, l.Item, marketText, l.Total.StringFixed(2))
	}
}
