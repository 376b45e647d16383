package profiling

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
)

// CobraProfiler adds --timing and --cpu-profile to a command tree.
type CobraProfiler struct {
	cpuProfileFile *os.File
	cpuProfilePath string
	timing         bool
	started        bool
}

// NewCobraProfiler creates a new profiler for Cobra integration.
func NewCobraProfiler() *CobraProfiler {
	return &CobraProfiler{}
}

// AddFlags registers the profiling flags and hooks on cmd.
func (p *CobraProfiler) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&p.cpuProfilePath, "cpu-profile", "", "Write CPU profile to file")
	cmd.PersistentFlags().BoolVar(&p.timing, "timing", false, "Print a timing summary on exit")
	cmd.PersistentPreRunE = p.PreRun
	cmd.PersistentPostRun = p.PostRun
}

// PreRun starts timing and CPU profiling as requested by the flags.
func (p *CobraProfiler) PreRun(cmd *cobra.Command, args []string) error {
	p.started = true
	if p.timing {
		Enable()
	}

	if p.cpuProfilePath != "" {
		f, err := os.Create(p.cpuProfilePath)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		p.cpuProfileFile = f
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			p.cpuProfileFile = nil
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
	}
	return nil
}

// PostRun stops profiling and prints the timing summary to stderr.
func (p *CobraProfiler) PostRun(cmd *cobra.Command, args []string) {
	p.Finish(cmd.ErrOrStderr())
}

// Finish stops the CPU profile and writes the timing summary to w. Cobra
// skips PostRun when a command fails, so callers also invoke Finish after
// Execute returns. Only the first call after PreRun does anything.
func (p *CobraProfiler) Finish(w io.Writer) {
	if !p.started {
		return
	}
	p.started = false

	if p.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		p.cpuProfileFile.Close()
		fmt.Fprintf(w, "CPU profile written to %s\n", p.cpuProfilePath)
		p.cpuProfileFile = nil
	}
	if p.timing {
		Summarize(w)
	}
}
