package cli

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/folio/internal/db"
	"github.com/opencode-ai/folio/internal/events"
	"github.com/opencode-ai/folio/internal/models"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsDeleteCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)

	settingsHistoryCmd.Flags().IntVar(&historyLimit, "limit", 50, "maximum number of events")
	settingsHistoryCmd.Flags().StringVar(&historySince, "since", "", "only events newer than this duration (e.g. 24h)")
}

var (
	historyLimit int
	historySince string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage stored site settings",
	Long: fmt.Sprintf("Manage key-value site settings. Known keys: %s, %s, %s, %s.",
		models.SettingAuthorName, models.SettingAuthorAvatarURL, models.SettingAuthorHeadline, models.SettingSiteTitle),
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		setting, err := db.NewSettingsRepository(database).Get(ctx, args[0])
		if err != nil {
			if errors.Is(err, db.ErrSettingNotFound) {
				return fmt.Errorf("setting %q is not set", args[0])
			}
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), setting)
		}
		fmt.Fprintln(cmd.OutOrStdout(), setting.Value)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := db.NewSettingsRepository(database)
		eventRepo := db.NewEventRepository(database)
		var setting *models.Setting
		err = database.WithTx(ctx, func(tx *sql.Tx) error {
			oldValue := ""
			previous, err := repo.GetWithTx(ctx, tx, args[0])
			switch {
			case err == nil:
				oldValue = previous.Value
			case !errors.Is(err, db.ErrSettingNotFound):
				return err
			}

			setting, err = repo.SetWithTx(ctx, tx, args[0], args[1])
			if err != nil {
				return err
			}
			if err := events.LogSettingUpdated(ctx, eventRepo.WithTx(tx), setting.Key, oldValue, setting.Value); err != nil {
				return fmt.Errorf("failed to record setting change: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), setting)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", setting.Key)
		return nil
	},
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		settings, err := db.NewSettingsRepository(database).List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, settings)
		}
		if len(settings) == 0 {
			fmt.Fprintln(out, "No settings stored.")
			return nil
		}
		rows := make([][]string, 0, len(settings))
		for _, setting := range settings {
			rows = append(rows, []string{setting.Key, truncate(setting.Value, 50), setting.UpdatedAt.Format(time.RFC3339)})
		}
		return writeTable(out, []string{"KEY", "VALUE", "UPDATED"}, rows)
	},
}

var settingsDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Remove a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := db.NewSettingsRepository(database)
		eventRepo := db.NewEventRepository(database)
		err = database.WithTx(ctx, func(tx *sql.Tx) error {
			previous, err := repo.GetWithTx(ctx, tx, args[0])
			if err != nil {
				if errors.Is(err, db.ErrSettingNotFound) {
					return fmt.Errorf("setting %q is not set", args[0])
				}
				return err
			}
			if err := repo.DeleteWithTx(ctx, tx, args[0]); err != nil {
				return err
			}
			if err := events.LogSettingDeleted(ctx, eventRepo.WithTx(tx), previous.Key, previous.Value); err != nil {
				return fmt.Errorf("failed to record setting deletion: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history [key]",
	Short: "Show the settings change log",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		query := db.EventQuery{Limit: historyLimit}
		entityType := models.EntityTypeSetting
		query.EntityType = &entityType
		if len(args) == 1 {
			query.EntityID = &args[0]
		}
		if historySince != "" {
			window, err := time.ParseDuration(historySince)
			if err != nil {
				return fmt.Errorf("invalid --since %q: %w", historySince, err)
			}
			since := time.Now().Add(-window)
			query.Since = &since
		}

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		page, err := db.NewEventRepository(database).Query(ctx, query)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, page.Events)
		}
		if len(page.Events) == 0 {
			fmt.Fprintln(out, "No setting changes recorded.")
			return nil
		}
		rows := make([][]string, 0, len(page.Events))
		for _, event := range page.Events {
			var payload models.SettingChangedPayload
			_ = json.Unmarshal(event.Payload, &payload)
			rows = append(rows, []string{
				event.Timestamp.Local().Format(time.RFC3339),
				string(event.Type),
				event.EntityID,
				truncate(payload.OldValue, 30),
				truncate(payload.NewValue, 30),
			})
		}
		return writeTable(out, []string{"TIME", "EVENT", "KEY", "OLD", "NEW"}, rows)
	},
}
