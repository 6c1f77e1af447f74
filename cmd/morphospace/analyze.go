package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeContext string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <form>",
	Short: "Analyze one surface form into a coordinate-tagged morpheme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := analyzerFor(langCode)
		if err != nil {
			return err
		}
		form := args[0]
		if analyzeContext != "" {
			form = a.Disambiguate(form, analyzeContext)
		}
		m, err := a.ParseMorpheme(form)
		if err != nil {
			return err
		}
		return printJSON(m)
	},
}

var vocalizeCmd = &cobra.Command{
	Use:   "vocalize <form>",
	Short: "List the known vocalizations of an unpointed form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := analyzerFor(langCode)
		if err != nil {
			return err
		}
		for _, v := range a.Vocalize(args[0]) {
			fmt.Println(v)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeContext, "context", "",
		"context phrase used to pick among ambiguous readings")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(vocalizeCmd)
}
