package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fixpool.dev/pkg/fixpool/internal/domain"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a mined change pool",
		Long:  "View the contexts and changes stored in a change pool file.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			poolPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Pool: poolPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
