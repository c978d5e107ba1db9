// Command sheetctl scans and fills workbook templates from the shell.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/domain/values"
	"github.com/init-pkg/sheet-export/domain/workbook"
	excel_parser_service "github.com/init-pkg/sheet-export/internal/app/excel-parser/service"
	"github.com/init-pkg/sheet-export/internal/app/export/writer"
	"github.com/init-pkg/sheet-export/internal/app/mapping/keys"
	"github.com/init-pkg/sheet-export/internal/app/mapping/scanner"
	postgres_client "github.com/init-pkg/sheet-export/internal/clients/postgres"
	"github.com/init-pkg/sheet-export/internal/config"
)

var (
	pretty      bool
	mappingPath string
	fieldsPath  string
	outputPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sheetctl",
		Short:        "Scan and fill wholesaler workbook templates",
		SilenceUsage: true,
	}

	scanCmd := &cobra.Command{
		Use:   "scan [template.xlsx]",
		Short: "Print the label candidates and transcript of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	scanCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	fillCmd := &cobra.Command{
		Use:   "fill [template.xlsx]",
		Short: "Write field values into a copy of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runFill,
	}
	fillCmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Mapping JSON file (key -> Sheet!Cell)")
	fillCmd.Flags().StringVarP(&fieldsPath, "fields", "f", "", "Field values JSON file")
	fillCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	_ = fillCmd.MarkFlagRequired("mapping")
	_ = fillCmd.MarkFlagRequired("output")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database migrations",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}

	rootCmd.AddCommand(scanCmd, fillCmd, migrateCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	parser := excel_parser_service.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	wb, err := parser.Parse(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	s := scanner.New(keys.New(fields.DefaultVocabulary()))
	transcript, rows := s.Transcript(wb)
	out := map[string]any{
		"candidates":      s.Candidates(wb),
		"transcript":      transcript,
		"transcript_rows": rows,
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func runFill(cmd *cobra.Command, args []string) error {
	pristine, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var mapping workbook.Mapping
	if err := readJSON(mappingPath, &mapping); err != nil {
		return err
	}
	set := values.Set{}
	if fieldsPath != "" {
		if err := readJSON(fieldsPath, &set); err != nil {
			return err
		}
	}

	res, err := writer.Fill(pristine, mapping, set)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, res.Content, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	for _, s := range res.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s (%s): %s\n", s.Key, s.Cell, s.Reason)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d cells written to %s\n", res.Written, outputPath)
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return postgres_client.Migrate(cmd.Context(), cfg.Infrastructure.Db.Dsn)
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
