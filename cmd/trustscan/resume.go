package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RohanBisht33/trustscan-app/internal/analyze"
	"github.com/RohanBisht33/trustscan-app/internal/ingestion"
	"github.com/RohanBisht33/trustscan-app/internal/observability"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <file>",
	Short: "Score a resume file for ATS readiness",
	Long:  "Skip classification and score the file directly as a resume, printing the ATS score with highlights and badges.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResume,
}

var (
	resumeProfile string
	resumeJSON    bool
)

func init() {
	resumeCmd.Flags().StringVarP(&resumeProfile, "profile", "p", "", "Path to a scoring profile JSON file")
	resumeCmd.Flags().BoolVar(&resumeJSON, "json", false, "Emit the insights as JSON")

	rootCmd.AddCommand(resumeCmd)
}

func runResume(_ *cobra.Command, args []string) error {
	profile, err := loadProfile(resumeProfile)
	if err != nil {
		return err
	}

	text, _, err := ingestion.FromFile(args[0])
	if err != nil {
		return err
	}

	insights := analyze.New(profile).ResumeDetail(text)
	if insights == nil {
		return fmt.Errorf("text is too short to assess as a resume")
	}

	if resumeJSON {
		data, err := json.MarshalIndent(insights, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode insights: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintResumeInsights(insights)
	return nil
}
