package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shan533/Github-Issue-Digest-Bot/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagOut    string
	flagConfig string
	flagOpen   bool
)

var rootCmd = &cobra.Command{
	Use:   "ghdigest",
	Short: "GitHub issues & PRs digest generator",
	Long:  "ghdigest queries the GitHub search API for issues and pull requests matching configured searches, prioritizes them by label, and writes a static HTML digest.",
	RunE:  runDigest,
}

func init() {
	rootCmd.Flags().StringVar(&flagOut, "out", "digest.html", "output file for the HTML digest")
	rootCmd.Flags().BoolVar(&flagOpen, "open", false, "open the digest in the default browser after writing")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(previewCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ghdigest %s (commit: %s, built: %s)\n", version, commit, date)
		if r := update.Check(cmd.Context(), version); r != nil {
			fmt.Printf("A newer version is available: %s\n", r.LatestVersion)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
