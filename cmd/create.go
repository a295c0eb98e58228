package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mkmigration/mkmigration/internal/config"
	"github.com/mkmigration/mkmigration/internal/migration"
)

func nameArg(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return &UsageError{Msg: "migration name is required"}
	case 1:
		return nil
	default:
		return &UsageError{Msg: fmt.Sprintf("expected exactly one migration name, got %d arguments", len(args))}
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd.ErrOrStderr()); err != nil {
		return err
	}

	withDown, _ := cmd.Flags().GetBool("down")

	creator := migration.NewCreator(cfg.MigrationsDir, log)
	report, err := creator.Create(args[0], withDown)
	if report != nil {
		if perr := printReport(cmd.OutOrStdout(), report, cfg.Format); perr != nil && err == nil {
			err = perr
		}
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("stem", report.Stem).
		Int("created", report.Created()).
		Int("skipped", len(report.Files)-report.Created()).
		Msg("Migration scaffolding complete")

	return nil
}

func printReport(w io.Writer, report *migration.Report, format string) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	for _, f := range report.Files {
		var err error
		switch f.Outcome {
		case migration.OutcomeCreated:
			_, err = fmt.Fprintf(w, "Created migration %s\n", f.Filename)
		case migration.OutcomeSkipped:
			_, err = fmt.Fprintf(w, "Migration %s already exists.\n", f.Filename)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
