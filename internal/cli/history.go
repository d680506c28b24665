package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardfold/pkg/history"
)

// historyCommand creates the history command for inspecting composed cards.
func (c *CLI) historyCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect previously composed cards",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "history directory (default: ~/.config/cardfold/history)")

	cmd.AddCommand(c.historyListCommand(&dir))
	cmd.AddCommand(c.historyShowCommand(&dir))
	cmd.AddCommand(c.historyDeleteCommand(&dir))

	return cmd
}

// historyListCommand creates the "history list" subcommand.
func (c *CLI) historyListCommand(dir *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List composed cards, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.NewFileStore(*dir)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}
			if len(records) == 0 {
				printInfo("No cards in history")
				return nil
			}

			for _, rec := range records {
				age := rec.CreatedAt.Format(time.RFC3339)
				fmt.Printf("%s  %-12s %-10s  %s\n",
					StyleHighlight.Render(rec.ID),
					rec.Occasion, rec.ArtStyle,
					StyleDim.Render(age))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum cards to list (0 for all)")

	return cmd
}

// historyShowCommand creates the "history show" subcommand.
func (c *CLI) historyShowCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show the details of a composed card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.NewFileStore(*dir)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			rec, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("load card: %w", err)
			}
			if rec == nil {
				return fmt.Errorf("card %s not found", args[0])
			}

			printKeyValue("ID", rec.ID)
			printKeyValue("Occasion", rec.Occasion)
			printKeyValue("Art style", rec.ArtStyle)
			printKeyValue("Page", rec.PageFormat)
			printKeyValue("Style", rec.Style)
			printKeyValue("Created", rec.CreatedAt.Format(time.RFC3339))
			if rec.Description != "" {
				printKeyValue("Description", rec.Description)
			}
			if rec.Message != "" {
				printKeyValue("Message", rec.Message)
			}
			if rec.ArtworkPrompt != "" {
				printKeyValue("Prompt", rec.ArtworkPrompt)
			}
			return nil
		},
	}
}

// historyDeleteCommand creates the "history delete" subcommand.
func (c *CLI) historyDeleteCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a composed card from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.NewFileStore(*dir)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete card: %w", err)
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
