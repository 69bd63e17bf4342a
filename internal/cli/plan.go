package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/internal/mapfile"
	"github.com/katalvlaran/covpath/planner"
)

// ErrIncomplete is returned by --strict runs that end without full coverage.
var ErrIncomplete = errors.New("coverage incomplete")

func newPlanCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "plan <map>",
		Short: "Plan a coverage path over a map file",
		Long: `Plan loads a YAML or JSON map, runs the planner with the configured
orientation and heuristics, and prints a summary and the policy map.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, g, err := loadMap(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			describeMap(w, m.Name, g)

			p := planner.New(g, a.cfg.PlannerOptions(a.logger.With("map", m.Name))...)
			if err := p.Start(); err != nil {
				return err
			}
			p.Compute()
			res := p.Result()

			printSection(w, "Plan")
			printLabelValue(w, "orientation", a.cfg.Planner.Orientation)
			printLabelValue(w, "coverage heuristic", a.cfg.Planner.CoverageHeuristic)
			printLabelValue(w, "recovery heuristic", a.cfg.Planner.RecoveryHeuristic)
			printOutcome(w, g, res)

			if a.cfg.Output.Policy {
				printSection(w, "Policy")
				fmt.Fprintln(w, renderPolicy(g, res))
			}
			if a.cfg.Output.Path {
				printSection(w, "Path")
				fmt.Fprintln(w, formatPath(res.Path))
			}

			if strict && !res.Found {
				return fmt.Errorf("%w: %s", ErrIncomplete, plural(res.Coverage.Unvisited(g), "free cell", "free cells")+" unvisited")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error unless every free cell is covered")
	cmd.Flags().Bool("path", false, "print the (x, y) path, x being the column")
	_ = a.v.BindPFlag("output.path", cmd.Flags().Lookup("path"))
	return cmd
}

// loadMap reads and validates the map file at path.
func loadMap(path string) (*mapfile.Map, *grid.Grid, error) {
	m, err := mapfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := m.Build()
	if err != nil {
		return nil, nil, err
	}
	return m, g, nil
}

// describeMap prints the map header and warns about free cells the start
// cannot reach.
func describeMap(w io.Writer, name string, g *grid.Grid) {
	printSection(w, "Map "+name)
	printLabelValue(w, "size", fmt.Sprintf("%d x %d", g.Rows(), g.Cols()))
	printLabelValue(w, "free cells", fmt.Sprint(g.FreeCells()))
	printLabelValue(w, "start", g.Start().String())
	printLabelValue(w, "regions", fmt.Sprint(len(g.Components())))

	reach := 0
	for _, p := range g.Reachable(g.Start()) {
		if g.At(p) == grid.Free {
			reach++
		}
	}
	if lost := g.FreeCells() - reach; lost > 0 {
		printWarning(w, plural(lost, "free cell is", "free cells are")+" unreachable from the start")
	}
}

// printOutcome prints the terminal state, size and cost of a run.
func printOutcome(w io.Writer, g *grid.Grid, res planner.Result) {
	msg := fmt.Sprintf("%s in %s, cost %.2f, %s",
		res.State, plural(res.Steps, "step", "steps"), res.Cost,
		plural(recoveryHops(res.Annotations), "recovery hop", "recovery hops"))
	if res.Found {
		printSuccess(w, msg)
		return
	}
	printWarning(w, msg)
	if res.Coverage != nil {
		printLabelValue(w, "unvisited", fmt.Sprint(res.Coverage.Unvisited(g)))
	}
}
