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

var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Classify a text file as job listing, resume, or unknown",
	Long:  "Run only the document classifier and print the label with both accumulated scores, without scoring the content.",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

var (
	classifyProfile string
	classifyJSON    bool
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyProfile, "profile", "p", "", "Path to a scoring profile JSON file")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Emit the classification as JSON")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, args []string) error {
	profile, err := loadProfile(classifyProfile)
	if err != nil {
		return err
	}

	text, _, err := ingestion.FromFile(args[0])
	if err != nil {
		return err
	}

	cls := analyze.New(profile).Classify(text)

	if classifyJSON {
		data, err := json.MarshalIndent(cls, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode classification: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintClassification(cls)
	return nil
}
