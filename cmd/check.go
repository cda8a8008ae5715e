package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdamianovich/portfolio/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates every locale document",
	Long: `The check command loads each supported language's translation document,
runs schema validation (required literals, month names, date invariants) and
reports any problems without starting the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		failures := 0
		for _, lang := range content.SupportedLanguages() {
			doc, err := content.LoadDocument(appConfig.LocalesDir, lang)
			if err != nil {
				fmt.Printf("FAIL %s: %v\n", lang, err)
				failures++
				continue
			}
			if err := content.LoadAbout(appConfig.ContentDir, doc); err != nil {
				fmt.Printf("FAIL %s: %v\n", lang, err)
				failures++
				continue
			}
			total := 0
			for _, kind := range content.Kinds() {
				total += len(doc.Section(kind).Items)
			}
			fmt.Printf("OK   %s: %d items\n", lang, total)
		}
		if failures > 0 {
			return fmt.Errorf("%d locale document(s) failed validation", failures)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
