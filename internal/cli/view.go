package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seatforge/seatforge/pkg/layout"
)

// viewCommand creates the view command for interactive seat map browsing.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <config>",
		Short: "Browse a seat map interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}

			result := layout.Generate(cfg)
			if len(result.Cells) == 0 {
				printInfo("Layout has no cells to show")
				return nil
			}

			model := NewSeatMapModel(cfg, result)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
