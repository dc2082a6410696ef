package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"todo-tracker/internal/task"
)

type exportDoc struct {
	Total int          `yaml:"total"`
	Tasks []exportTask `yaml:"tasks"`
}

type exportTask struct {
	Index       int    `yaml:"index"`
	Description string `yaml:"description"`
	Deadline    string `yaml:"deadline"`
	Done        bool   `yaml:"done"`
	Status      string `yaml:"status"`
}

func exportCmd(flags *rootFlags) *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the saved tasks as YAML",
		Long: `Load the task file and print every task with its position and
deadline status as a YAML document. The task file is not modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, uc, err := bootstrap(flags)
			if err != nil {
				return err
			}

			ctx := context.Background()
			if err := uc.Load(ctx); err != nil {
				return err
			}

			out, err := uc.View(ctx)
			if err != nil {
				return err
			}
			return writeExport(cmd.OutOrStdout(), out, pendingOnly)
		},
	}

	cmd.Flags().BoolVarP(&pendingOnly, "pending", "p", false, "Only export tasks that are not done")

	return cmd
}

// writeExport renders rows as YAML. Indexes keep their store positions when filtering.
func writeExport(w io.Writer, out task.ViewOutput, pendingOnly bool) error {
	doc := exportDoc{Tasks: make([]exportTask, 0, len(out.Rows))}
	for _, r := range out.Rows {
		if pendingOnly && r.IsDone {
			continue
		}
		doc.Tasks = append(doc.Tasks, exportTask{
			Index:       r.Index,
			Description: r.Description,
			Deadline:    r.Deadline,
			Done:        r.IsDone,
			Status:      string(r.Status),
		})
	}
	doc.Total = len(doc.Tasks)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
