package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spigell/skill-gap/internal/similarity"
	"github.com/spigell/skill-gap/internal/vocabulary"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the built-in analysis defaults",
	Run: func(cmd *cobra.Command, _ []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s version: %s\n", app, version)
	fmt.Fprintf(w, "built-in vocabulary: %d skills\n", vocabulary.Default().Len())
	fmt.Fprintf(w, "default similarity: %s (max features %d)\n", similarity.MethodTFIDF, similarity.DefaultMaxFeatures)
}
