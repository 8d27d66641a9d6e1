package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/folio/internal/theme"
	"github.com/opencode-ai/folio/internal/themed"
)

var (
	themePath     string
	themeRemote   string
	exportFormat  string
	exportOutput  string
	cssSelector   string
	remoteTimeout = 5 * time.Second
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeModesCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeCSSCmd)
	themeCmd.AddCommand(themeOverridesCmd)

	themeShowCmd.Flags().StringVar(&themePath, "path", "", "print one value by dotted path (e.g. palette.background.default)")
	themeShowCmd.Flags().StringVar(&themeRemote, "remote", "", "resolve through a running theme gRPC server at this address")

	themeExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format: json, yaml or css")
	themeExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")

	themeCSSCmd.Flags().StringVar(&cssSelector, "selector", "", "CSS selector (default: [data-theme=\"<mode>\"])")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and export the site theme",
}

var themeShowCmd = &cobra.Command{
	Use:   "show [light|dark]",
	Short: "Show the resolved configuration for a mode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveArg(cmd.Context(), args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if themePath != "" {
			value, ok := cfg.Lookup(themePath)
			if !ok {
				return fmt.Errorf("no value at path %q", themePath)
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(out, value)
			}
			return printValue(out, value)
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, cfg)
		}
		return writeSummary(out, cfg)
	},
}

var themeModesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List supported modes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		modes := theme.Modes()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, modes)
		}
		defaultMode := GetConfig().DefaultMode()
		rows := make([][]string, 0, len(modes))
		for _, mode := range modes {
			rows = append(rows, []string{mode.String(), formatYesNo(mode == defaultMode)})
		}
		return writeTable(out, []string{"MODE", "DEFAULT"}, rows)
	},
}

var themeExportCmd = &cobra.Command{
	Use:   "export [light|dark]",
	Short: "Export a mode configuration as JSON, YAML or CSS",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveArg(cmd.Context(), args)
		if err != nil {
			return err
		}

		var data []byte
		switch strings.ToLower(exportFormat) {
		case "json":
			data, err = cfg.ToJSON()
		case "yaml", "yml":
			data, err = cfg.ToYAML()
		case "css":
			data = []byte(cfg.CSS(""))
		default:
			return fmt.Errorf("unknown export format %q (want json, yaml or css)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to export theme: %w", err)
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s theme to %s\n", cfg.Mode, exportOutput)
		return nil
	},
}

var themeCSSCmd = &cobra.Command{
	Use:   "css [light|dark]...",
	Short: "Print CSS custom properties",
	Long:  "Print CSS custom properties for the given modes, or for both modes when none are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := theme.ValidateSelector(cssSelector); err != nil {
			return err
		}
		registry := GetRegistry()
		modes := theme.Modes()
		if len(args) > 0 {
			modes = modes[:0]
			for _, arg := range args {
				mode, err := theme.ParseMode(arg)
				if err != nil {
					return err
				}
				modes = append(modes, mode)
			}
		}

		out := cmd.OutOrStdout()
		for i, mode := range modes {
			cfg, err := registry.Resolve(mode)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, cfg.CSS(cssSelector))
		}
		return nil
	},
}

type overrideRow struct {
	Path string   `json:"path"`
	Kind string   `json:"kind"`
	Keys []string `json:"keys,omitempty"`
}

var themeOverridesCmd = &cobra.Command{
	Use:   "overrides",
	Short: "List the light-mode override table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides := theme.Overrides()
		rows := make([]overrideRow, 0, len(overrides))
		for _, override := range overrides {
			row := overrideRow{Path: override.Path, Kind: fmt.Sprintf("%T", override.Value)}
			switch v := override.Value.(type) {
			case theme.Component:
				row.Kind = "component"
				row.Keys = v.SlotNames()
				if v.CSS != "" {
					row.Kind = "stylesheet"
				}
			case theme.StyleRecord:
				row.Kind = "record"
				for key := range v {
					row.Keys = append(row.Keys, key)
				}
				sort.Strings(row.Keys)
			case theme.Palette:
				row.Kind = "palette"
			}
			rows = append(rows, row)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, rows)
		}
		table := make([][]string, 0, len(rows))
		for _, row := range rows {
			table = append(table, []string{row.Path, row.Kind, truncate(strings.Join(row.Keys, ","), 60)})
		}
		return writeTable(out, []string{"PATH", "KIND", "KEYS"}, table)
	},
}

// resolveArg resolves the optional mode argument, falling back to the
// configured default. With --remote it asks a running theme server instead.
func resolveArg(ctx context.Context, args []string) (theme.ModeConfiguration, error) {
	raw := GetConfig().DefaultMode().String()
	if len(args) > 0 {
		raw = args[0]
	}

	if themeRemote == "" {
		return GetRegistry().ResolveString(raw)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	client, err := themed.Dial(themeRemote)
	if err != nil {
		return theme.ModeConfiguration{}, err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()
	return client.Resolve(ctx, raw)
}

func writeSummary(out io.Writer, cfg theme.ModeConfiguration) error {
	p := cfg.Palette
	rows := [][]string{
		{"mode", cfg.Mode.String()},
		{"background.default", p.Background.Default},
		{"background.paper", p.Background.Paper},
		{"text.primary", p.Text.Primary},
		{"text.secondary", p.Text.Secondary},
		{"divider", p.Divider},
	}
	for _, role := range p.Roles() {
		rows = append(rows, []string{role.Name + ".main", role.Token.Main})
	}
	rows = append(rows,
		[]string{"font.family", truncate(cfg.Typography.FontFamily, 48)},
		[]string{"h1", fmt.Sprintf("%s / %d", cfg.Typography.H1.FontSize, cfg.Typography.H1.FontWeight)},
		[]string{"shape.borderRadius", strconv.Itoa(cfg.Shape.BorderRadius)},
		[]string{"spacing", cfg.Spacing(1)},
		[]string{"shadows", strconv.Itoa(len(cfg.Shadows))},
		[]string{"components", strconv.Itoa(len(cfg.Components))},
	)
	return writeTable(out, []string{"TOKEN", "VALUE"}, rows)
}

func printValue(out io.Writer, value any) error {
	switch v := value.(type) {
	case string:
		_, err := fmt.Fprintln(out, v)
		return err
	case float64, int, bool:
		_, err := fmt.Fprintln(out, v)
		return err
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
}
