package cli

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/folio/internal/ogimage"
	"github.com/opencode-ai/folio/internal/site"
	"github.com/opencode-ai/folio/internal/theme"
)

var (
	imageMode     string
	imageOutput   string
	imageTitle    string
	imageSubtitle string
	imageFooter   string
	imageSize     int
	imageInitials string
	imageTagline  string
	imagePills    []string
)

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.AddCommand(imageOGCmd)
	imageCmd.AddCommand(imageIconCmd)

	imageCmd.PersistentFlags().StringVarP(&imageMode, "mode", "m", "", "theme mode (default: site.default_mode)")
	imageCmd.PersistentFlags().StringVarP(&imageOutput, "output", "o", "", "output PNG file, or - for stdout (required)")

	imageOGCmd.Flags().StringVar(&imageTitle, "title", "", "card title (default: author name)")
	imageOGCmd.Flags().StringVar(&imageSubtitle, "subtitle", "", "card subtitle (default: author headline)")
	imageOGCmd.Flags().StringVar(&imageInitials, "initials", "", "badge text (default: author initials)")
	imageOGCmd.Flags().StringVar(&imageTagline, "tagline", "", "line under the title (default: first sentence of the About intro)")
	imageOGCmd.Flags().StringSliceVar(&imagePills, "pill", nil, "pill label, repeatable (default: About skills)")
	imageOGCmd.Flags().StringVar(&imageFooter, "footer", "", "card footer (default: site.url without scheme)")

	imageIconCmd.Flags().IntVar(&imageSize, "size", ogimage.FaviconSize, "icon edge length in pixels")
	imageIconCmd.Flags().StringVar(&imageInitials, "initials", "", "icon text (default: author initials)")
}

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Render social preview images and icons",
}

var imageOGCmd = &cobra.Command{
	Use:   "og",
	Short: "Render the 1200x630 Open Graph card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := imageTheme()
		if err != nil {
			return err
		}

		card := ogimage.Card{
			Title:    imageTitle,
			Subtitle: imageSubtitle,
			Initials: imageInitials,
			Tagline:  imageTagline,
			Pills:    imagePills,
			Footer:   imageFooter,
		}
		if card.Title == "" || card.Subtitle == "" {
			author, err := loadAuthor(cmd.Context())
			if err != nil {
				return err
			}
			author = author.WithDefaults()
			if card.Title == "" {
				card.Title = author.Name
			}
			if card.Subtitle == "" {
				card.Subtitle = author.Headline
			}
		}
		if card.Initials == "" {
			card.Initials = site.Author{Name: card.Title}.Initials()
		}
		about := site.DefaultAbout()
		if card.Tagline == "" {
			card.Tagline = about.Summary()
		}
		if len(card.Pills) == 0 {
			card.Pills = about.SkillNames()
		}
		if card.Footer == "" {
			card.Footer = site.DisplayURL(GetConfig().Site.URL)
		}

		step := startProgress(cmd.ErrOrStderr(), "Rendering social card")
		img, err := ogimage.RenderSocialCard(cfg, card)
		if err != nil {
			step.Fail(err)
			return err
		}
		step.Done()
		return writePNG(cmd.OutOrStdout(), img)
	},
}

var imageIconCmd = &cobra.Command{
	Use:   "icon",
	Short: "Render a square initials icon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := imageTheme()
		if err != nil {
			return err
		}

		initials := imageInitials
		if initials == "" {
			author, err := loadAuthor(cmd.Context())
			if err != nil {
				return err
			}
			initials = author.WithDefaults().Initials()
		}

		step := startProgress(cmd.ErrOrStderr(), fmt.Sprintf("Rendering %dpx icon", imageSize))
		img, err := ogimage.RenderIcon(cfg, initials, imageSize)
		if err != nil {
			step.Fail(err)
			return err
		}
		step.Done()
		return writePNG(cmd.OutOrStdout(), img)
	},
}

func imageTheme() (theme.ModeConfiguration, error) {
	if imageOutput == "" {
		return theme.ModeConfiguration{}, &PreflightError{
			Message:  "no output file given",
			Hint:     "Pass --output file.png, or --output - to write to stdout",
			NextStep: "folio image og --output og.png",
		}
	}
	raw := imageMode
	if raw == "" {
		raw = GetConfig().DefaultMode().String()
	}
	return GetRegistry().ResolveString(raw)
}

func writePNG(stdout io.Writer, img image.Image) error {
	if imageOutput == "-" {
		return ogimage.EncodePNG(stdout, img)
	}

	file, err := os.Create(imageOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", imageOutput, err)
	}
	if err := ogimage.EncodePNG(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", imageOutput, err)
	}
	return file.Close()
}
