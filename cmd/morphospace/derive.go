package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ttm-morphology/morphospace"
)

var (
	deriveJSON bool
	deriveTree bool
)

type familyJSON struct {
	Root     string                 `json:"root"`
	Language string                 `json:"language"`
	Count    int                    `json:"count"`
	Members  []morphospace.Morpheme `json:"members"`
}

var deriveCmd = &cobra.Command{
	Use:   "derive <root>",
	Short: "Build the derivational family of a root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := analyzerFor(langCode)
		if err != nil {
			return err
		}
		space, err := a.AnalyzeRoot(args[0])
		if err != nil {
			return err
		}

		if deriveJSON {
			return printJSON(familyJSON{
				Root:     space.Root(),
				Language: space.Language().Code(),
				Count:    space.Len(),
				Members:  space.Morphemes(),
			})
		}

		if deriveTree {
			tree := space.DerivationTree()
			degrees := make([]int, 0, len(tree))
			for d := range tree {
				degrees = append(degrees, d)
			}
			sort.Ints(degrees)
			for _, d := range degrees {
				fmt.Printf("degree %d:\n", d)
				for _, m := range tree[d] {
					fmt.Printf("  %s\t%s\n", m.Form, m.Gloss)
				}
			}
			return nil
		}

		for _, m := range space.Morphemes() {
			c := m.Coordinates()
			fmt.Printf("(%d,%d,%d)\t%s\t%s\n", c.X, c.Y, c.Z, m.Form, m.Gloss)
		}
		return nil
	},
}

func init() {
	deriveCmd.Flags().BoolVar(&deriveJSON, "json", false, "print the family as JSON")
	deriveCmd.Flags().BoolVar(&deriveTree, "tree", false, "group members by derivation degree")
	rootCmd.AddCommand(deriveCmd)
}
