package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-harvest/internal/config"
	"github.com/vovakirdan/fruit-harvest/internal/harvest"
)

var (
	flagStart  int
	flagBudget int
	flagFruit  []string
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle.yaml]",
	Short: "Compute the best harvest for a fixed layout",
	Long: `Print the maximum total a walker can collect from a start position
with a step budget, and the route that achieves it.

The layout comes either from a YAML puzzle file:

  start: 5
  budget: 4
  fruits:
    - {position: 2, value: 8}
    - {position: 6, value: 3}
    - {position: 8, value: 6}

or from flags, with one --fruit position:value per fruit.

Examples:
  arcade solve puzzle.yaml
  arcade solve --start 5 --budget 4 --fruit 2:8 --fruit 6:3 --fruit 8:6`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagStart, "start", 0, "Start position")
	solveCmd.Flags().IntVar(&flagBudget, "budget", 0, "Step budget")
	solveCmd.Flags().StringArrayVar(&flagFruit, "fruit", nil, "Fruit as position:value (repeatable)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	start, budget, fruits, err := solveInput(args)
	if err != nil {
		return err
	}
	logger.Debug("solving", "start", start, "budget", budget, "fruit", len(fruits))

	w := harvest.BestWindow(fruits, start, budget)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Start %d, budget %d, %d fruit worth %s\n",
		start, budget, len(fruits), humanize.Comma(int64(fruits.Total())))
	fmt.Fprintf(out, "Max total: %s\n", humanize.Comma(int64(w.Total)))
	if w.Empty() {
		fmt.Fprintln(out, "No fruit is reachable.")
		return nil
	}

	lo, hi := fruits[w.Left].Position, fruits[w.Right].Position
	fmt.Fprintf(out, "Route: %s first, covering %d..%d in %d steps (%d fruit)\n",
		w.First, lo, hi, w.Cost, w.Right-w.Left+1)
	return nil
}

// solveInput reads the layout from a puzzle file or from flags.
func solveInput(args []string) (int, int, harvest.FruitSet, error) {
	if len(args) == 1 {
		p, set, err := config.LoadPuzzle(args[0])
		if err != nil {
			return 0, 0, nil, err
		}
		return p.Start, p.Budget, set, nil
	}

	if len(flagFruit) == 0 {
		return 0, 0, nil, errors.New("solve: give a puzzle file or at least one --fruit")
	}
	if flagBudget < 0 {
		return 0, 0, nil, fmt.Errorf("solve: budget must not be negative, got %d", flagBudget)
	}

	fruits := make([]harvest.Fruit, 0, len(flagFruit))
	for _, s := range flagFruit {
		f, err := parseFruit(s)
		if err != nil {
			return 0, 0, nil, err
		}
		fruits = append(fruits, f)
	}
	set, err := harvest.NewFruitSet(fruits)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("solve: %w", err)
	}
	return flagStart, flagBudget, set, nil
}

// parseFruit parses "position:value".
func parseFruit(s string) (harvest.Fruit, error) {
	posStr, valStr, ok := strings.Cut(s, ":")
	if !ok {
		return harvest.Fruit{}, fmt.Errorf("solve: fruit %q is not position:value", s)
	}
	pos, err := strconv.Atoi(strings.TrimSpace(posStr))
	if err != nil {
		return harvest.Fruit{}, fmt.Errorf("solve: fruit %q: bad position: %w", s, err)
	}
	val, err := strconv.Atoi(strings.TrimSpace(valStr))
	if err != nil {
		return harvest.Fruit{}, fmt.Errorf("solve: fruit %q: bad value: %w", s, err)
	}
	return harvest.Fruit{Position: pos, Value: val}, nil
}

