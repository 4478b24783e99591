package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cjr29/corewar/internal/assemble"
	"github.com/cjr29/corewar/internal/core"
	"github.com/cjr29/corewar/internal/redcode"
)

var (
	warriorPaths []string
	coreSize     int
	maxCycles    int
	maxProcesses int
	maxLength    int
	minDistance  int
	pSpace       int
	rounds       int
	seed         int64
)

var rootCmd = &cobra.Command{
	Use:   "corewar",
	Short: "Fight Redcode warriors in a shared memory core",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Assemble and run one battle (or several rounds) between warriors",
	RunE:  runBattle,
}

func init() {
	runCmd.Flags().StringArrayVar(&warriorPaths, "warrior", nil, "path to a warrior source file, repeatable; use - for stdin")
	runCmd.Flags().IntVarP(&coreSize, "size", "s", core.DefaultConfig().CoreSize, "core size in cells")
	runCmd.Flags().IntVarP(&maxCycles, "cycles", "c", core.DefaultConfig().MaxCycles, "max cycles before a battle is declared a tie")
	runCmd.Flags().IntVarP(&maxProcesses, "max-processes", "p", core.DefaultConfig().MaxProcesses, "max live processes per warrior")
	runCmd.Flags().IntVarP(&maxLength, "max-length", "l", core.DefaultConfig().MaxWarriorLength, "max instructions per warrior")
	runCmd.Flags().IntVarP(&minDistance, "min-distance", "d", core.DefaultConfig().MinDistance, "min cells between warrior starting points")
	runCmd.Flags().IntVarP(&pSpace, "p-space", "S", core.DefaultConfig().PSpace, "p-space size (reserved; LDP/STP are unsupported)")
	runCmd.Flags().IntVarP(&rounds, "rounds", "r", 1, "number of rounds to fight, reseeding placement each round")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for warrior placement; 0 picks a random seed")
	runCmd.MarkFlagRequired("warrior")
	rootCmd.AddCommand(runCmd)
}

func readSource(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

func runBattle(cmd *cobra.Command, args []string) error {
	if len(warriorPaths) < 1 {
		return fmt.Errorf("at least one --warrior is required")
	}

	cfg := core.Config{
		CoreSize:         coreSize,
		MaxCycles:        maxCycles,
		MaxProcesses:     maxProcesses,
		MaxWarriorLength: maxLength,
		MinDistance:      minDistance,
		PSpace:           pSpace,
	}

	warriors := make([]redcode.Warrior, 0, len(warriorPaths))
	for i, path := range warriorPaths {
		src, err := readSource(path)
		if err != nil {
			return err
		}
		w, warnings, err := assemble.Assemble(src, cfg.Limits())
		if err != nil {
			return fmt.Errorf("assembling warrior %d (%s): %w", i, path, err)
		}
		for _, wr := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", wr.Message)
		}
		warriors = append(warriors, w)
	}

	if rounds < 1 {
		rounds = 1
	}
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	wins := make([]int, len(warriors))
	losses := make([]int, len(warriors))
	ties := make([]int, len(warriors))
	names := make([]string, len(warriors))

	for round := 0; round < rounds; round++ {
		c := core.NewCore(cfg)
		if err := c.LoadWarriors(warriors, rng); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		outcomes := c.Run()
		for i, o := range outcomes {
			names[i] = c.Name(i)
			switch o {
			case core.OutcomeWin:
				wins[i]++
			case core.OutcomeLoss:
				losses[i]++
			case core.OutcomeTie:
				ties[i]++
			}
		}
	}

	for i := range warriors {
		label := names[i]
		if strings.TrimSpace(label) == "" {
			label = fmt.Sprintf("%d", i)
		}
		fmt.Printf("%s: %d %d %d\n", label, wins[i], losses[i], ties[i])
	}
	return nil
}
