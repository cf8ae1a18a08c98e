// Command cdcl loads a DIMACS CNF instance, optionally drives it through a
// batch of incremental assumption sets, and reports SAT/UNSAT along with a
// model or a failed-assumption core.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cdclgo/solver/internal/dimacs"
	"github.com/cdclgo/solver/internal/proof"
	"github.com/cdclgo/solver/internal/sat"
	"github.com/cdclgo/solver/parsers"
)

var (
	flagCPUProfile  = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile  = flag.Bool("memprof", false, "save pprof memory profile in memprof")
	flagGzipped     = flag.Bool("gzip", false, "treat the instance and assumption files as gzip-compressed")
	flagAssumptions = flag.String("assumptions", "", "path to an assumption-batch (.asm) file")
	flagProofOut    = flag.String("proof", "", "path to write a proof stream to, if set")
	flagProofModels = flag.Bool("proof-models", false, "include satisfying models in the proof stream")
)

type config struct {
	instanceFile    string
	assumptionsFile string
	gzipped         bool
	memProfile      bool
	cpuProfile      bool
	proofFile       string
	proofModels     bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile:    flag.Arg(0),
		assumptionsFile: *flagAssumptions,
		gzipped:         *flagGzipped,
		memProfile:      *flagMemProfile,
		cpuProfile:      *flagCPUProfile,
		proofFile:       *flagProofOut,
		proofModels:     *flagProofModels,
	}, nil
}

func run(cfg *config) error {
	opts := sat.DefaultOptions
	opts.Stats = os.Stdout

	var proofFile *os.File
	if cfg.proofFile != "" {
		f, err := os.Create(cfg.proofFile)
		if err != nil {
			return fmt.Errorf("could not create proof file: %w", err)
		}
		defer f.Close()
		proofFile = f
		opts.ProofModels = cfg.proofModels
		opts.Proof = proof.NewStreamRecorder(f, cfg.proofModels)
	}

	s := sat.NewSolver(opts)

	if err := parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumConstraints())

	var batches [][]sat.Literal
	if cfg.assumptionsFile != "" {
		bs, err := dimacs.LoadAssumptionBatches(cfg.assumptionsFile, cfg.gzipped)
		if err != nil {
			return fmt.Errorf("could not parse assumption batches: %w", err)
		}
		batches = bs
	} else {
		batches = [][]sat.Literal{nil} // a single solve with no assumptions
	}

	t := time.Now()
	for i, batch := range batches {
		for _, lit := range batch {
			s.PushAssumption(lit)
		}

		status := s.Solve()
		elapsed := time.Since(t)

		fmt.Printf("c batch:      %d\n", i)
		fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
		fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())
		fmt.Printf("c status:     %s\n", status.String())

		switch status {
		case sat.StateSat:
			printModel(s.Model)
		case sat.StateUnsatUnderAssumptions:
			printFailedCore(s.FailedAssumptions())
		}

		s.ClearAssumptions()
	}

	if proofFile != nil {
		if err := proofFile.Sync(); err != nil {
			return fmt.Errorf("could not flush proof file: %w", err)
		}
	}
	return nil
}

func printModel(model []bool) {
	fmt.Print("v")
	for v, b := range model {
		if b {
			fmt.Printf(" %d", v+1)
		} else {
			fmt.Printf(" -%d", v+1)
		}
	}
	fmt.Println(" 0")
}

func printFailedCore(core []sat.Literal) {
	fmt.Print("u")
	for _, l := range core {
		v := l.VarID() + 1
		if !l.IsPositive() {
			v = -v
		}
		fmt.Printf(" %d", v)
	}
	fmt.Println(" 0")
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
