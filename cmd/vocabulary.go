package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/skill-gap/internal/analysis"
	"github.com/spigell/skill-gap/internal/report"
	"github.com/spigell/skill-gap/internal/vocabulary"
)

var vocabularyCmd = &cobra.Command{
	Use:   "vocabulary",
	Short: "List known skills grouped by category",
	Run: func(cmd *cobra.Command, _ []string) {
		config, err := getConfig()
		if err != nil {
			log.Fatalf("getting a config: %s", err)
		}

		vocab, err := buildVocabulary(config.Vocabulary)
		if err != nil {
			log.Fatalf("loading the vocabulary: %s", err)
		}

		printVocabulary(cmd.OutOrStdout(), vocab)
	},
}

func init() {
	rootCmd.AddCommand(vocabularyCmd)

	vocabularyCmd.Flags().String("file", "", "vocabulary file to load instead of the default one")
	viper.BindPFlag("vocabulary.file", vocabularyCmd.Flags().Lookup("file"))
}

// groupByCategory buckets vocabulary entries the same way recommendations do.
func groupByCategory(vocab *vocabulary.Vocabulary) map[analysis.Category][]string {
	groups := make(map[analysis.Category][]string)
	for _, skill := range vocab.Entries() {
		c := analysis.Categorize(skill)
		groups[c] = append(groups[c], skill)
	}
	return groups
}

func printVocabulary(w io.Writer, vocab *vocabulary.Vocabulary) {
	groups := groupByCategory(vocab)

	for _, c := range analysis.Categories() {
		entries := groups[c]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d)\n", report.CategoryTitle(c), len(entries))
		fmt.Fprintf(w, "  %s\n\n", strings.Join(entries, ", "))
	}

	fmt.Fprintf(w, "Total: %d skills\n", vocab.Len())
}
