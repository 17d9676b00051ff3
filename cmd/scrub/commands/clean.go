package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/scrub/internal/logger"
	"github.com/jmylchreest/scrub/internal/output"
	"github.com/jmylchreest/scrub/pkg/pipeline"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run a cleaning pipeline over the input documents",
	Long: `Clean reads one document per input line (or a named CSV column),
applies the step pipeline and writes the cleaned batch as plain text,
JSON, JSONL or a single-column CSV.

Without --pipeline the default pipeline runs: remove_emoji (replace),
remove_urls, remove_html, remove_symbols (#/@ with keywords),
replace_curly_quotes, remove_whitespace_currency, fix_whitespace.

Examples:
  cat tweets.txt | scrub clean
  scrub clean -f tweets.csv --csv-column text -o cleaned.txt
  scrub clean -f tweets.txt --pipeline pipeline.yaml --trace`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.StringP("file", "f", "", "input file (default: stdin)")
	flags.String("csv-column", "", "treat input as CSV and clean this column")
	flags.String("pipeline", "", "YAML pipeline definition (default: built-in pipeline)")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "text", "output format: text, json, jsonl or csv")
	flags.String("column", "clean_text", "column name for csv output")
	flags.IntP("parallel", "c", 1, "goroutines used to map the pipeline over the batch")
	flags.Bool("trace", false, "log one record per executed step")
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	inputPath, _ := cmd.Flags().GetString("file")
	csvColumn, _ := cmd.Flags().GetString("csv-column")
	docs, err := readDocuments(inputPath, csvColumn)
	if err != nil {
		logError("%v", err)
		return err
	}
	logger.Debug("input loaded", "documents", len(docs))

	var steps []pipeline.Step
	if pipelinePath, _ := cmd.Flags().GetString("pipeline"); pipelinePath != "" {
		cfg, err := pipeline.LoadConfig(pipelinePath)
		if err != nil {
			logError("%v", err)
			return err
		}
		steps = cfg.Steps
	}

	trace, _ := cmd.Flags().GetBool("trace")
	parallel, _ := cmd.Flags().GetInt("parallel")
	exec := pipeline.New(
		pipeline.WithVerbose(trace),
		pipeline.WithParallelism(parallel),
	)

	cleaned, err := exec.Execute(docs, steps)
	if err != nil {
		logError("%v", err)
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	column, _ := cmd.Flags().GetString("column")
	if err := writeBatch(outputPath, format, column, cleaned); err != nil {
		logError("%v", err)
		return err
	}
	logger.Debug("output written", "documents", len(cleaned), "format", format)
	return nil
}

func writeBatch(path, format, column string, docs []string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	ow, err := output.NewWriter(w, output.Format(format), output.WithColumn(column))
	if err != nil {
		return err
	}
	if err := ow.WriteBatch(docs); err != nil {
		return err
	}
	return ow.Flush()
}
