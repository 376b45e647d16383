package profiling

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/grovetools/viewpick/tui/theme"
)

// Stopper ends a timed span.
type Stopper interface {
	Stop()
}

// Span is one timed phase of a command run.
type Span struct {
	Name     string
	Depth    int
	Start    time.Time
	Duration time.Duration
	done     bool
}

// Recorder collects nested spans in start order.
type Recorder struct {
	mu      sync.Mutex
	enabled bool
	started time.Time
	spans   []*Span
	open    []*Span
}

var defaultRecorder = &Recorder{}

type spanStopper struct {
	r *Recorder
	s *Span
}

func (st spanStopper) Stop() {
	st.r.end(st.s)
}

type noopStopper struct{}

func (noopStopper) Stop() {}

// Enable turns on the global recorder. Spans started before Enable are not
// recorded.
func Enable() {
	defaultRecorder.mu.Lock()
	defer defaultRecorder.mu.Unlock()
	if defaultRecorder.enabled {
		return
	}
	defaultRecorder.enabled = true
	defaultRecorder.started = time.Now()
}

// Enabled reports whether spans are being recorded.
func Enabled() bool {
	defaultRecorder.mu.Lock()
	defer defaultRecorder.mu.Unlock()
	return defaultRecorder.enabled
}

// Start begins a span nested under the innermost open span. Stop it with
// defer.
func Start(name string) Stopper {
	return defaultRecorder.start(name)
}

// Spans returns a copy of the recorded spans.
func Spans() []Span {
	defaultRecorder.mu.Lock()
	defer defaultRecorder.mu.Unlock()
	out := make([]Span, len(defaultRecorder.spans))
	for i, s := range defaultRecorder.spans {
		out[i] = *s
	}
	return out
}

// Reset disables the recorder and drops all spans.
func Reset() {
	defaultRecorder.mu.Lock()
	defer defaultRecorder.mu.Unlock()
	*defaultRecorder = Recorder{}
}

// Summarize writes the span tree with each span's share of the total run.
func Summarize(w io.Writer) {
	defaultRecorder.mu.Lock()
	defer defaultRecorder.mu.Unlock()
	if !defaultRecorder.enabled {
		return
	}

	total := time.Since(defaultRecorder.started)
	muted := theme.DefaultTheme.Muted

	fmt.Fprintln(w, muted.Render("--- Timing ---"))
	for _, s := range defaultRecorder.spans {
		d := s.Duration
		if !s.done {
			d = time.Since(s.Start)
		}
		share := 0.0
		if total > 0 {
			share = float64(d) / float64(total) * 100
		}
		fmt.Fprintf(w, "%s- %s %s\n",
			strings.Repeat("  ", s.Depth), s.Name,
			muted.Render(fmt.Sprintf("(%v, %.1f%%)", d.Round(100*time.Microsecond), share)))
	}
	fmt.Fprintln(w, muted.Render(fmt.Sprintf("total %v", total.Round(100*time.Microsecond))))
}

func (r *Recorder) start(name string) Stopper {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.enabled {
		return noopStopper{}
	}

	s := &Span{Name: name, Depth: len(r.open), Start: time.Now()}
	r.spans = append(r.spans, s)
	r.open = append(r.open, s)
	return spanStopper{r: r, s: s}
}

func (r *Recorder) end(s *Span) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.done {
		return
	}
	s.Duration = time.Since(s.Start)
	s.done = true

	for i := len(r.open) - 1; i >= 0; i-- {
		if r.open[i] == s {
			r.open = r.open[:i]
			break
		}
	}
}
