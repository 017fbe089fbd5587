package osier

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and dispatch metrics.
// Only populated when Page.debug is true.
type debugStats struct {
	layoutTime   time.Duration
	dispatchTime time.Duration
	drawTime     time.Duration
	viewCount    int
	touchCount   int
	keyCount     int
	firedCount   int
	drawnCount   int
}

// debugLog prints update-phase timing and dispatch stats to stderr.
func (p *Page) debugLog(stats debugStats) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[osier] layout: %v | dispatch: %v | total: %v\n",
		stats.layoutTime, stats.dispatchTime, stats.layoutTime+stats.dispatchTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[osier] views: %d | touches: %d | keys: %d | fired: %d\n",
		stats.viewCount, stats.touchCount, stats.keyCount, stats.firedCount)
}

// debugLogDraw prints draw-phase stats to stderr.
func (p *Page) debugLogDraw(stats debugStats) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[osier] draw: %v | filled views: %d\n",
		stats.drawTime, stats.drawnCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed view is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(v *View, op string) {
	if v.disposed {
		panic(fmt.Sprintf("osier debug: %s on disposed view %q", op, v.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(v *View) {
	depth := 0
	for p := v; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[osier] warning: tree depth %d exceeds %d (view %q)\n",
			depth, debugMaxTreeDepth, v.Name)
	}
}

// debugCheckChildCount warns on stderr if a group has more than 1000 children.
// Dispatch is linear in the child count.
const debugMaxChildCount = 1000

func debugCheckChildCount(v *View) {
	if len(v.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[osier] warning: view %q has %d children (threshold %d)\n",
			v.Name, len(v.children), debugMaxChildCount)
	}
}
