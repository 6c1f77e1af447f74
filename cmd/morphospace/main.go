// Command morphospace explores morpheme spaces from the command line
// and serves them as a JSON REST API.
//
// Analysis commands work directly on analyzer output:
//
//	morphospace analyze كِتَاب --lang ar
//	morphospace derive ك-ت-ب --lang ar
//	morphospace vocalize كتب --lang ar
//
// Space commands work on saved spaces (JSON snapshots or a SQLite
// database written by export):
//
//	morphospace export ك-ت-ب د-ر-س --lang ar --out space.json
//	morphospace nearest كِتَاب --lang ar --in space.json --k 3
//	morphospace stats --in space.json
//	morphospace serve --db morphemes.db
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ttm-morphology/morphospace"
	"github.com/ttm-morphology/morphospace/analyzer"
)

var (
	langCode     string
	lexiconDir   string
	strategyName string
)

var rootCmd = &cobra.Command{
	Use:          "morphospace",
	Short:        "Morpheme space toolkit — morphemes as points in (width, depth, height)",
	SilenceUsage: true,
	Long: `Morphospace models morphemes as points in a three-axis space:
X counts derivation steps, Y is the active semantic level (1-4), and
Z identifies the vocalic configuration. Analyzers for Arabic, Hebrew,
Portuguese, English, Russian, Sanskrit and Mandarin place forms in
that space; spatial queries run over saved spaces.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&langCode, "lang", "ar",
		"language code (ar, he, pt, en, ru, sa, zh)")
	rootCmd.PersistentFlags().StringVar(&lexiconDir, "lexicon-dir", "",
		"directory of YAML root lexicons merged over the built-ins")
	rootCmd.PersistentFlags().StringVar(&strategyName, "strategy", "linear",
		"spatial index strategy (linear, kdtree)")
}

// newAnalyzers builds one analyzer per supported language. When a
// lexicon directory is given, its files are merged over the built-in
// Semitic lexicons.
func newAnalyzers(lexiconDir string) (map[morphospace.Language]analyzer.Analyzer, error) {
	analyzers := make(map[morphospace.Language]analyzer.Analyzer)
	for _, lang := range analyzer.Supported() {
		a, err := analyzer.New(lang)
		if err != nil {
			return nil, err
		}
		analyzers[lang] = a
	}

	if lexiconDir != "" {
		loaded, err := analyzer.LoadLexiconDir(lexiconDir)
		if err != nil {
			return nil, err
		}
		arabic := analyzer.BuiltinArabic()
		arabic.Merge(loaded)
		analyzers[morphospace.LangArabic] = analyzer.NewArabicWithLexicon(arabic)

		hebrew := analyzer.BuiltinHebrew()
		hebrew.Merge(loaded)
		analyzers[morphospace.LangHebrew] = analyzer.NewHebrewWithLexicon(hebrew)
	}
	return analyzers, nil
}

// analyzerFor resolves the --lang flag to an analyzer.
func analyzerFor(code string) (analyzer.Analyzer, error) {
	lang, err := morphospace.ParseLanguage(code)
	if err != nil {
		return nil, err
	}
	analyzers, err := newAnalyzers(lexiconDir)
	if err != nil {
		return nil, err
	}
	a, ok := analyzers[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", analyzer.ErrUnsupported, lang)
	}
	return a, nil
}

// spaceConfig resolves the --strategy flag to a space configuration.
func spaceConfig() (morphospace.Config, error) {
	st, err := morphospace.ParseStrategy(strategyName)
	if err != nil {
		return morphospace.Config{}, err
	}
	return morphospace.Config{Strategy: st}, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
