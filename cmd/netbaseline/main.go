// netbaseline - IRONCLAD Network Baseline Assessment
//
// Main CLI entrypoint. Provides commands for scoring answer sets, listing
// the questionnaire and remediation library, serving the wizard API, and
// exposing the engine via MCP.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/ironclad-sec/netbaseline/internal/answers"
	"github.com/ironclad-sec/netbaseline/internal/catalog"
	"github.com/ironclad-sec/netbaseline/internal/mcpserver"
	"github.com/ironclad-sec/netbaseline/internal/remedy"
	"github.com/ironclad-sec/netbaseline/internal/report"
	"github.com/ironclad-sec/netbaseline/internal/webapp"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "netbaseline",
		Short: "IRONCLAD - Network baseline security self-assessment for SMB environments",
		Long: `netbaseline scores a questionnaire describing a small business's network
architecture and produces a 0-100 risk score with a letter grade plus
remediation guidance.

The engine is deliberately conservative: missing or "not sure" answers are
treated as failing controls.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	rootCmd.AddCommand(
		newAssessCmd(),
		newQuestionsCmd(),
		newControlsCmd(),
		newServeCmd(),
		newMCPCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// --- Helper Functions ---

// loadCatalog returns the catalog from --catalog, the NETBASELINE_CATALOG
// environment variable, or the built-in default.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	dir, _ := cmd.Flags().GetString("catalog")
	if dir == "" {
		dir = os.Getenv("NETBASELINE_CATALOG")
	}
	if dir == "" {
		return catalog.Default()
	}
	return catalog.Load(dir)
}

// loadAnswers reads an answer set from a JSON file ("-" for stdin).
func loadAnswers(path string) (answers.Set, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	var set answers.Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing answers file: %w", err)
	}
	return set, nil
}

// writeReport writes the result to the specified output format.
func writeReport(res *report.Result, output, format string) error {
	reporter, err := report.Get(format)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	return reporter.Generate(f, res)
}

// --- Commands ---

func newAssessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score an answer set and generate a report",
		Long: `Loads a JSON answer set (question ID to option key), runs the scoring
engine and remediation resolver, and writes a report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			answersPath, _ := cmd.Flags().GetString("answers")
			output, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")

			set, err := loadAnswers(answersPath)
			if err != nil {
				return err
			}

			res := report.NewResult(set)
			log.Printf("Assessment complete: score %d/100 (grade %s), %d failed controls",
				res.Breakdown.FinalScore, res.Breakdown.Grade, len(res.Breakdown.FailedControls))

			if err := writeReport(res, output, format); err != nil {
				return err
			}
			log.Printf("Report written to %s", output)

			return nil
		},
	}

	cmd.Flags().String("answers", "answers.json", "Path to answers JSON file (\"-\" for stdin)")
	cmd.Flags().String("output", "report.html", "Output file path")
	cmd.Flags().String("format", "html", "Report format: html, json, or csv")

	return cmd
}

func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Manage and list questionnaire content",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all questions in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			for _, s := range cat.Sections {
				fmt.Printf("\n[%s] %s\n", s.ID, s.Title)
				for _, q := range s.Questions {
					scored := ""
					if !q.Scored {
						scored = " (not scored)"
					}
					fmt.Printf("  %-28s %s%s\n", q.ID, q.Prompt, scored)
					for _, o := range q.Options {
						fmt.Printf("      %-18s %s\n", o.Key, o.Label)
					}
				}
			}
			fmt.Printf("\nTotal: %d questions\n", len(cat.Questions()))

			return nil
		},
	}
	listCmd.Flags().String("catalog", "", "Path to a catalog directory (default: built-in)")

	cmd.AddCommand(listCmd)
	return cmd
}

func newControlsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "controls",
		Short: "Manage and list the remediation library",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all controls with remediation content",
		RunE: func(cmd *cobra.Command, args []string) error {
			library := remedy.Library()

			fmt.Printf("%-40s %-10s %-5s %s\n", "CONTROL", "SEVERITY", "GATE", "TITLE")
			fmt.Println("--------------------------------------------------------------------------------------------")
			for _, b := range library {
				fmt.Printf("%-40s %-10s %-5s %s\n", b.ControlID, b.Severity, b.Gate, b.Title)
			}
			fmt.Printf("\nTotal: %d controls\n", len(library))

			return nil
		},
	}

	cmd.AddCommand(listCmd)
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the wizard HTTP API",
		Long: `Starts the stateless HTTP API consumed by the assessment wizard:
GET /api/questions returns the catalog, POST /api/assess scores an answer set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			addr, _ := cmd.Flags().GetString("addr")
			rps, _ := cmd.Flags().GetFloat64("rate-limit")

			cat, err := loadCatalog(cmd)
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           webapp.New(cat, rps).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("Serving wizard API on %s", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server error: %w", err)
				}
			case <-ctx.Done():
				log.Println("Shutting down...")
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().Float64("rate-limit", 5.0, "Max requests per second per client")
	cmd.Flags().String("catalog", "", "Path to a catalog directory (default: built-in)")

	return cmd
}

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server for AI-assisted assessments",
		Long: `Starts a Model Context Protocol (MCP) server over stdio, exposing the
scoring engine, question catalog, and remediation library as tools.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			log.Printf("Loaded catalog: %d questions", len(cat.Questions()))

			mcpSrv := mcpserver.NewMCPServer(cat)

			log.Println("Starting MCP server on stdio...")
			if err := server.ServeStdio(mcpSrv); err != nil {
				return fmt.Errorf("MCP server error: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().String("catalog", "", "Path to a catalog directory (default: built-in)")

	return cmd
}
