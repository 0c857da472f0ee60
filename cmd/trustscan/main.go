// Package main provides the entry point for the TrustScan CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trustscan",
	Short: "Job listing and resume trust analyzer",
	Long:  "TrustScan classifies free text as a job listing or a resume, scores job listings for scam risk, and scores resumes for ATS readiness, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
