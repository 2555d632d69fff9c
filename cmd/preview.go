package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shan533/Github-Issue-Digest-Bot/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the digest to the terminal instead of a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := collect(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(render.Terminal(d))
		return nil
	},
}
