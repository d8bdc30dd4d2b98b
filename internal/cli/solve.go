package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hypercubers/rocket"
	"github.com/Hypercubers/rocket/internal/storage"
)

var (
	solveDepth   int
	solveCheap   string
	solveSticker bool
	solveShowAll bool
	solveNoStore bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <alg>",
	Short: "Find reorientation insertions for an algorithm",
	Long: `Search for reorientation insertions that cancel an algorithm down to
nothing (or to a single turn).

The algorithm is given in face-turn notation, e.g.:

  rocket solve "R U2 R2 U' R2 U' R2 U2 R"

Cheap reorientations (counted as a single extra turn) can be listed
with --cheap, e.g. --cheap "x y2".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().IntVar(&solveDepth, "depth", 0, "Maximum number of reorientations to insert (default from config, 5)")
	solveCmd.Flags().StringVar(&solveCheap, "cheap", "", "Space-separated reorientations to count as one turn (e.g. \"x y2\")")
	solveCmd.Flags().BoolVar(&solveSticker, "sticker", false, "Print solutions in sticker notation instead of O-notation")
	solveCmd.Flags().BoolVar(&solveShowAll, "all", false, "Print every solution, not only the cheapest ones")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "Do not record this search in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	depth := cfg.MaxDepth
	if cmd.Flags().Changed("depth") {
		depth = solveDepth
	}
	cheapSpec := cfg.CheapMoves
	if cmd.Flags().Changed("cheap") {
		cheapSpec = solveCheap
	}
	sticker := cfg.StickerNotation || solveSticker
	showAll := cfg.ShowAll || solveShowAll

	alg := strings.Join(args, " ")
	moves, err := rocket.ParseMoves(alg)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return rocket.ErrSequenceEmpty
	}

	cheap, err := rocket.ParseCheapSet(cheapSpec)
	if err != nil {
		return err
	}

	result, err := rocket.Search(moves,
		rocket.WithMaxDepth(depth),
		rocket.WithCheapMoves(cheap),
		rocket.WithProgress(func(line string) {
			fmt.Println(line)
		}),
	)
	if err != nil {
		return err
	}

	lines := reportLines(result, cheap, sticker, showAll)
	for _, line := range lines {
		fmt.Println(line)
	}

	if !solveNoStore {
		if err := storeRun(alg, depth, cheapSpec, sticker, showAll, result, cheap); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to store run: %v\n", err)
		}
	}

	return nil
}

// reportLines renders the search outcome: a summary, then the winning
// solutions (or all of them with showAll).
func reportLines(result *rocket.Result, cheap rocket.CheapSet, sticker, showAll bool) []string {
	if !result.Found {
		return []string{"No solutions?"}
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Found %d solutions with %d reorients (%d STM).",
		len(result.Solutions), result.Reorients, result.TotalTurns()))

	shown := result.Solutions
	if !showAll {
		minCost, winners := result.MinCost(cheap)
		lines = append(lines, fmt.Sprintf("%d of them add only %d ETM.", len(winners), minCost))
		shown = winners
	}
	for _, rec := range shown {
		lines = append(lines, rocket.FormatSolution(result.Moves, rec, sticker))
	}

	return lines
}

func storeRun(alg string, depth int, cheapSpec string, sticker, showAll bool, result *rocket.Result, cheap rocket.CheapSet) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs := storage.NewRunRepository(db)
	runID, err := runs.Create(storage.RunRecord{
		Alg:             alg,
		MaxDepth:        depth,
		CheapMoves:      cheapSpec,
		StickerNotation: sticker,
		ShowAll:         showAll,
		Found:           result.Found,
		ReorientCount:   result.Reorients,
		SolutionCount:   len(result.Solutions),
	})
	if err != nil {
		return err
	}

	solutions := storage.NewSolutionRepository(db)
	for i, rec := range result.Solutions {
		line := rocket.FormatSolution(result.Moves, rec, sticker)
		if _, err := solutions.Create(runID, i, rec.Cost(cheap), line); err != nil {
			return err
		}
	}

	return nil
}
