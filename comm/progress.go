package comm

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/itchio/headway/tracker"
)

// ProgressTheme contains all the characters we need to show progress
type ProgressTheme struct {
	BarStart string
	BarEnd   string
	Current  string
	Empty    string
	OpSign   string
	StatSign string
}

var themes = map[string]*ProgressTheme{
	"unicode": {"▐", "▌", "▓", "░", "•", "✓"},
	"ascii":   {"|", "|", "#", "-", ">", "<"},
	"cp437":   {"▐", "▌", "█", "░", "∙", "√"},
}

func getCharset() string {
	if runtime.GOOS == "windows" && os.Getenv("OS") != "CYGWIN" {
		return "cp437"
	}

	var utf8 = ".UTF-8"
	if strings.Contains(os.Getenv("LC_ALL"), utf8) ||
		os.Getenv("LC_CTYPE") == "UTF-8" ||
		strings.Contains(os.Getenv("LANG"), utf8) {
		return "unicode"
	}

	return "ascii"
}

var theme = themes[getCharset()]

const (
	barWidth       = 20
	maxLabelLength = 40
)

var progressState = struct {
	sync.Mutex
	tracker   tracker.Tracker
	label     string
	paused    bool
	lastAlpha float64
	lastPrint time.Time
}{}

var printInterval = 500 * time.Millisecond

// StartProgress begins a period in which progress is regularly printed
func StartProgress() {
	StartProgressWithTotalBytes(0)
}

// StartProgressWithTotalBytes begins a period in which progress is regularly printed,
// and bps (bytes per second) is estimated from the total size given
func StartProgressWithTotalBytes(totalBytes int64) {
	progressState.Lock()
	defer progressState.Unlock()

	if progressState.tracker != nil {
		// already in progress
		return
	}

	opts := tracker.Opts{Value: progressState.lastAlpha}
	if totalBytes > 0 {
		opts.ByteAmount = &tracker.ByteAmount{Value: totalBytes}
	}
	progressState.tracker = tracker.New(opts)
	progressState.label = ""
	progressState.paused = false
	progressState.lastPrint = time.Time{}
}

// ProgressLabel sets the string printed next to the progress indicator
func ProgressLabel(label string) {
	progressState.Lock()
	defer progressState.Unlock()

	if len(label) > maxLabelLength {
		label = fmt.Sprintf("...%s", label[len(label)-(maxLabelLength-3):])
	}
	progressState.label = label
}

// PauseProgress temporarily stops printing the progress bar
func PauseProgress() {
	progressState.Lock()
	defer progressState.Unlock()

	if progressState.tracker != nil {
		progressState.tracker.Pause()
		progressState.paused = true
	}
}

// ResumeProgress resumes printing the progress bar after PauseProgress was called
func ResumeProgress() {
	progressState.Lock()
	defer progressState.Unlock()

	if progressState.tracker != nil {
		progressState.tracker.Resume()
		progressState.paused = false
	}
}

// Progress sets the completion of a task whose progress is being printed
// It only has an effect if StartProgress was already called.
func Progress(alpha float64) {
	progressState.Lock()
	defer progressState.Unlock()

	progressState.lastAlpha = alpha
	tr := progressState.tracker
	if tr == nil {
		return
	}
	tr.SetProgress(alpha)

	if time.Since(progressState.lastPrint) < printInterval {
		return
	}
	progressState.lastPrint = time.Now()

	msg := JsonMessage{
		"progress":   alpha,
		"percentage": alpha * 100.0,
	}
	var eta time.Duration
	if stats := tr.Stats(); stats != nil {
		if stats.TimeLeft() != nil {
			eta = *stats.TimeLeft()
			msg["eta"] = eta.Seconds()
		}
		if stats.BPS() != nil {
			msg["bps"] = stats.BPS().Value
		}
	}

	if settings.json {
		send("progress", msg)
		return
	}
	if settings.noProgress || settings.quiet || progressState.paused {
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s %s", renderBar(alpha, eta), progressState.label)
}

func renderBar(alpha float64, eta time.Duration) string {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	done := int(alpha * barWidth)

	var sb strings.Builder
	sb.WriteString(theme.BarStart)
	sb.WriteString(strings.Repeat(theme.Current, done))
	sb.WriteString(strings.Repeat(theme.Empty, barWidth-done))
	sb.WriteString(theme.BarEnd)
	fmt.Fprintf(&sb, " %5.1f%%", alpha*100.0)
	if eta > 0 {
		fmt.Fprintf(&sb, " %s left", eta.Round(time.Second))
	}
	return sb.String()
}

// EndProgress stops refreshing the progress bar and erases it.
func EndProgress() {
	progressState.Lock()
	defer progressState.Unlock()

	if progressState.tracker == nil {
		return
	}
	progressState.tracker.SetProgress(1.0)
	progressState.tracker = nil
	progressState.lastAlpha = 0

	if !settings.json && !settings.noProgress && !settings.quiet {
		fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", barWidth+maxLabelLength+20))
	}
}
