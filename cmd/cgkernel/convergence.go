package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/notargets/CGKernel/solvers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convProblem string
	convDegree  int
	convLevels  []int
	convConfig  string
	// rateMargin is how far below the asymptotic order the observed rate
	// may fall before the run is reported as a failure. Pre-asymptotic
	// ladders sit a little under degree+1.
	rateMargin float64
)

var convergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Run a mesh refinement convergence study",
	Long: `Solves a model problem over a doubling ladder of mesh resolutions
and reports the L2 errors and observed convergence rates.

Problems:
  - helmholtz:     u - laplace(u) = f, natural boundary conditions
  - poisson:       -laplace(u) = f, homogeneous Dirichlet
  - vectorpoisson: componentwise Poisson on a vector element space

Example:
  cgkernel convergence --problem poisson --degree 2 --levels 4,8,16`,
	RunE: runConvergence,
}

func init() {
	convergenceCmd.Flags().StringVar(&convProblem, "problem", "poisson", "model problem to solve")
	convergenceCmd.Flags().IntVar(&convDegree, "degree", 1, "polynomial degree of the element")
	convergenceCmd.Flags().IntSliceVar(&convLevels, "levels", []int{4, 8, 16}, "mesh resolutions")
	convergenceCmd.Flags().StringVar(&convConfig, "config", "", "YAML study file (overrides flags)")
	convergenceCmd.Flags().Float64Var(&rateMargin, "rate-margin", 0.3, "allowed shortfall below the asymptotic rate")
}

func runConvergence(cmd *cobra.Command, args []string) error {
	var studies []StudyConfig
	if convConfig != "" {
		cfg, err := LoadConfig(convConfig)
		if err != nil {
			return err
		}
		studies = cfg.Studies
		logger.Info("loaded study config",
			zap.String("path", convConfig),
			zap.Int("studies", len(studies)))
	} else {
		studies = []StudyConfig{{Problem: convProblem, Degree: convDegree, Levels: convLevels}}
	}

	var studyLog *slog.Logger
	if verbose {
		studyLog = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	failed := 0
	for _, sc := range studies {
		study := &solvers.Study{
			Problem: solvers.Problem(sc.Problem),
			Degree:  sc.Degree,
			Levels:  sc.Levels,
			Logger:  studyLog,
		}
		res, err := study.Run()
		if err != nil {
			return err
		}
		fmt.Println(res)

		want := study.ExpectedRate() - rateMargin
		if res.FinalRate() < want {
			failed++
			logger.Warn("convergence rate below expectation",
				zap.String("problem", sc.Problem),
				zap.Int("degree", sc.Degree),
				zap.Float64("observed", res.FinalRate()),
				zap.Float64("required", want))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d studies fell short of the expected rate", failed, len(studies))
	}
	return nil
}
