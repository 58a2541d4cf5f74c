// Package main provides the entry point for the resume builder CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "ATS-aware resume and cover letter builder",
	Long:  "Resume Builder analyzes a resume against a job description, surfaces ATS keywords, and generates an enhanced resume, professional summary, and cover letter as PDF and DOCX documents.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
