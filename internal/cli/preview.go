package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/folio/internal/theme"
	"github.com/opencode-ai/folio/internal/tui"
)

var previewMode string

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewMode, "mode", "m", "", "initial mode (default: site.default_mode)")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the theme in the terminal",
	Long:  "Open an interactive terminal preview of the palette, type scale, component overrides and author card.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return &PreflightError{
				Message:  "preview requires an interactive terminal",
				Hint:     "Run without --non-interactive and with a TTY, or export the theme instead",
				NextStep: "folio theme show",
			}
		}

		mode := GetConfig().DefaultMode()
		if previewMode != "" {
			parsed, err := theme.ParseMode(previewMode)
			if err != nil {
				return err
			}
			mode = parsed
		}

		author, err := loadAuthor(cmd.Context())
		if err != nil {
			return err
		}

		return tui.Run(tui.Config{
			Registry: GetRegistry(),
			Mode:     mode,
			Author:   author,
		})
	},
}
