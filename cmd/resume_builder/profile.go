package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/profile"
)

var profileOutputDir string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved candidate profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles, newest first",
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Print a saved profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

func init() {
	profileCmd.PersistentFlags().StringVarP(&profileOutputDir, "output", "o", config.DefaultOutputDir, "Directory holding saved profiles")
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileList(_ *cobra.Command, _ []string) error {
	store, err := profile.NewStore(profileOutputDir)
	if err != nil {
		return err
	}

	paths, err := store.List()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println("No saved profiles.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCREATED\tPATH")
	for _, path := range paths {
		p, err := store.Load(path)
		if err != nil {
			_, _ = fmt.Fprintf(w, "(invalid)\t\t%s\n", path)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.CreatedAt, path)
	}
	return w.Flush()
}

func runProfileShow(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profile %s: %w", args[0], err)
	}

	// Validate before echoing so malformed snapshots are reported
	if _, err := profile.Parse(data); err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
