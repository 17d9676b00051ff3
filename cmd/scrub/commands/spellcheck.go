package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/scrub/internal/logger"
	"github.com/jmylchreest/scrub/pkg/spelling"
)

var spellcheckCmd = &cobra.Command{
	Use:   "spellcheck",
	Short: "Report likely misspellings against a word list",
	Long: `Spellcheck tokenizes each input document with a social-media-aware
tokenizer and reports tokens that are not in the dictionary, together with
the closest dictionary word within the edit distance. Mentions, hashtags,
URLs, non-ASCII tokens and ordinals are skipped.

The dictionary is a plain word list, one word per line.`,
	RunE: runSpellcheck,
}

func init() {
	rootCmd.AddCommand(spellcheckCmd)

	flags := spellcheckCmd.Flags()
	flags.StringP("file", "f", "", "input file (default: stdin)")
	flags.String("csv-column", "", "treat input as CSV and check this column")
	flags.String("dict", "", "path to the word list (required)")
	flags.Int("distance", spelling.DefaultDistance, "maximum edit distance for suggestions")

	_ = spellcheckCmd.MarkFlagRequired("dict")
}

func runSpellcheck(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	dictPath, _ := cmd.Flags().GetString("dict")
	f, err := os.Open(dictPath)
	if err != nil {
		logError("%v", err)
		return err
	}
	corpus, err := spelling.ReadCorpus(f)
	f.Close()
	if err != nil {
		logError("%v", err)
		return err
	}
	logger.Debug("dictionary loaded", "words", corpus.Len())

	inputPath, _ := cmd.Flags().GetString("file")
	csvColumn, _ := cmd.Flags().GetString("csv-column")
	docs, err := readDocuments(inputPath, csvColumn)
	if err != nil {
		logError("%v", err)
		return err
	}

	distance, _ := cmd.Flags().GetInt("distance")
	suggestions := spelling.New(corpus, distance).Check(docs)

	tokens := make([]string, 0, len(suggestions))
	for tok := range suggestions {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	for _, tok := range tokens {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tok, suggestions[tok])
	}
	return nil
}
