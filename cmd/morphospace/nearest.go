package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttm-morphology/morphospace"
	"github.com/ttm-morphology/morphospace/store"
)

var (
	snapshotPath string
	dbPath       string
	nearestK     int
)

// loadQuerySpace loads a saved space from a snapshot file or a SQLite
// database, indexed with the configured strategy.
func loadQuerySpace(ctx context.Context) (*morphospace.MorphemeSpace, error) {
	cfg, err := spaceConfig()
	if err != nil {
		return nil, err
	}
	switch {
	case snapshotPath != "" && dbPath != "":
		return nil, errors.New("give either --in or --db, not both")
	case snapshotPath != "":
		return store.LoadSnapshotSpace(snapshotPath, cfg)
	case dbPath != "":
		db, err := store.NewSQLite(dbPath)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return store.LoadSpace(ctx, db, cfg)
	}
	return nil, errors.New("a saved space is required (--in snapshot or --db database)")
}

var nearestCmd = &cobra.Command{
	Use:   "nearest <form>",
	Short: "Find the nearest morphemes to a form in a saved space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		space, err := loadQuerySpace(cmd.Context())
		if err != nil {
			return err
		}
		a, err := analyzerFor(langCode)
		if err != nil {
			return err
		}
		m, err := a.ParseMorpheme(args[0])
		if err != nil {
			return err
		}

		for _, n := range space.FindNearest(m, nearestK) {
			c := n.Morpheme.Coordinates()
			fmt.Printf("%.3f\t(%d,%d,%d)\t%s\t%s\n",
				n.Distance, c.X, c.Y, c.Z, n.Morpheme.Form, n.Morpheme.Gloss)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "in", "",
		"JSON snapshot of a saved space")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"SQLite database of a saved space")
	nearestCmd.Flags().IntVar(&nearestK, "k", 5, "number of neighbors")
	rootCmd.AddCommand(nearestCmd)
}
