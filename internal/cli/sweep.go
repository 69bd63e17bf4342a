package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/covpath/planner"
)

func newSweepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep <map>",
		Short: "Rank every heuristic and orientation pair on a map",
		Long: `Sweep plans the map once per coverage heuristic and initial orientation
(restricted by sweep.heuristics and sweep.orientations in the config), ranks
the runs by outcome, steps and cost, and prints the policy map of the best.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, g, err := loadMap(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			describeMap(w, m.Name, g)

			kinds, orientations := a.cfg.SweepAxes()
			rows, err := planner.Sweep(g, kinds, orientations, a.cfg.PlannerOptions(a.logger.With("map", m.Name))...)
			if err != nil {
				return err
			}
			a.logger.With("map", m.Name).Debug("sweep finished", "runs", len(rows))

			shown := rows
			if top := a.cfg.Sweep.Top; top > 0 && top < len(rows) {
				shown = rows[:top]
			}
			printSection(w, fmt.Sprintf("Ranking (recovery %s)", a.cfg.Planner.RecoveryHeuristic))
			fmt.Fprintln(w, renderRanking(shown))

			best := rows[0]
			printSection(w, fmt.Sprintf("Best: %s facing %s", best.Heuristic, best.Orientation.Name()))
			printOutcome(w, g, best.Result)
			if a.cfg.Output.Policy {
				fmt.Fprintln(w, renderPolicy(g, best.Result))
			}
			return nil
		},
	}

	cmd.Flags().Int("top", 0, "print only the best N rows (0 = all)")
	_ = a.v.BindPFlag("sweep.top", cmd.Flags().Lookup("top"))
	return cmd
}
