package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/ttm-morphology/morphospace"
	"github.com/ttm-morphology/morphospace/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <root>...",
	Short: "Analyze root families and save them to a snapshot or database",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOut == "" && dbPath == "" {
			return errors.New("a destination is required (--out snapshot or --db database)")
		}

		a, err := analyzerFor(langCode)
		if err != nil {
			return err
		}
		cfg, err := spaceConfig()
		if err != nil {
			return err
		}
		space, err := morphospace.NewWithConfig(cfg)
		if err != nil {
			return err
		}

		for _, root := range args {
			family, err := a.AnalyzeRoot(root)
			if err != nil {
				return err
			}
			if family.Len() == 0 {
				log.Printf("root %s: no known derivations", root)
				continue
			}
			for _, m := range family.Morphemes() {
				if err := space.Add(m); err != nil {
					return err
				}
			}
		}

		if exportOut != "" {
			if err := store.SaveSnapshot(exportOut, space); err != nil {
				return err
			}
			log.Printf("wrote %d morphemes to %s", space.Len(), exportOut)
		}
		if dbPath != "" {
			db, err := store.NewSQLite(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			ids, err := db.PutBatch(cmd.Context(), space.Morphemes())
			if err != nil {
				return err
			}
			log.Printf("stored %d morphemes in %s", len(ids), dbPath)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "snapshot file to write")
	rootCmd.AddCommand(exportCmd)
}
