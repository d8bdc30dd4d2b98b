package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hypercubers/rocket/internal/storage"
)

var (
	historyLimit    int
	historyShowLast bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past searches",
	Long:  `Display recent searches stored in the history database.`,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the stored solutions of a past search",
	Long: `Display one stored search together with every solution line it found.

Use --last to show the most recent search.`,
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyShowLast, "last", false, "Show the most recent search")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs := storage.NewRunRepository(db)
	list, err := runs.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(list) == 0 {
		fmt.Printf("No searches recorded yet in %s\n", db.Path())
		fmt.Println("Run one with: rocket solve \"R U R' U'\"")
		return nil
	}

	fmt.Printf("Recent searches (showing %d):\n", len(list))
	fmt.Println()
	fmt.Printf("%-36s  %-19s  %-9s  %-9s  %s\n", "ID", "When", "Reorients", "Solutions", "Algorithm")
	fmt.Println("------------------------------------  -------------------  ---------  ---------  ---------")

	for _, run := range list {
		reorients := "-"
		solutions := "-"
		if run.Found {
			reorients = fmt.Sprintf("%d", run.ReorientCount)
			solutions = fmt.Sprintf("%d", run.SolutionCount)
		}

		alg := run.Alg
		if len(alg) > 40 {
			alg = alg[:37] + "..."
		}

		fmt.Printf("%-36s  %-19s  %-9s  %-9s  %s\n",
			run.RunID,
			run.CreatedAt,
			reorients,
			solutions,
			alg,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs := storage.NewRunRepository(db)

	var runID string
	if historyShowLast {
		list, err := runs.List(1)
		if err != nil {
			return fmt.Errorf("failed to get latest run: %w", err)
		}
		if len(list) == 0 {
			return fmt.Errorf("no searches found")
		}
		runID = list[0].RunID
	} else if len(args) > 0 {
		runID = args[0]
	} else {
		return fmt.Errorf("please provide a run ID or use --last")
	}

	run, err := runs.Get(runID)
	if err != nil {
		return fmt.Errorf("run not found: %s", runID)
	}

	fmt.Printf("ID:        %s\n", run.RunID)
	fmt.Printf("When:      %s\n", run.CreatedAt)
	fmt.Printf("Algorithm: %s\n", run.Alg)
	fmt.Printf("Depth:     %d\n", run.MaxDepth)
	if run.CheapMoves != "" {
		fmt.Printf("Cheap:     %s\n", run.CheapMoves)
	}
	fmt.Println()

	if !run.Found {
		fmt.Println("No solutions?")
		return nil
	}

	fmt.Printf("Found %d solutions with %d reorients.\n", run.SolutionCount, run.ReorientCount)
	fmt.Println()

	solutions := storage.NewSolutionRepository(db)
	stored, err := solutions.GetByRun(runID)
	if err != nil {
		return fmt.Errorf("failed to get solutions: %w", err)
	}

	for _, s := range stored {
		fmt.Printf("  [%d ETM] %s\n", s.Cost, s.Line)
	}

	return nil
}
