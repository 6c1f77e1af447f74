package main

import (
	"github.com/spf13/cobra"

	"github.com/ttm-morphology/morphospace"
)

type rangeJSON struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type statsJSON struct {
	Count          int            `json:"count"`
	XRange         rangeJSON      `json:"x_range"`
	YRange         rangeJSON      `json:"y_range"`
	ZRange         rangeJSON      `json:"z_range"`
	Languages      map[string]int `json:"languages"`
	Levels         map[string]int `json:"levels"`
	Configurations map[int]int    `json:"configurations"`
	Roots          map[string]int `json:"roots"`
	UniqueRoots    int            `json:"unique_roots"`
}

func toStatsJSON(st morphospace.Statistics) statsJSON {
	out := statsJSON{
		Count:          st.Count,
		XRange:         rangeJSON{Min: st.XRange.Min, Max: st.XRange.Max},
		YRange:         rangeJSON{Min: st.YRange.Min, Max: st.YRange.Max},
		ZRange:         rangeJSON{Min: st.ZRange.Min, Max: st.ZRange.Max},
		Languages:      make(map[string]int, len(st.Languages)),
		Levels:         make(map[string]int, len(st.Levels)),
		Configurations: st.Configurations,
		Roots:          st.Roots,
		UniqueRoots:    st.UniqueRoots,
	}
	for lang, n := range st.Languages {
		out.Languages[lang.Code()] = n
	}
	for level, n := range st.Levels {
		out.Levels[level.String()] = n
	}
	return out
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a saved space: counts, axis ranges, languages, levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		space, err := loadQuerySpace(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(toStatsJSON(space.Stats()))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
