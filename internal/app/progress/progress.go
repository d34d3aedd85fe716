// Package progress renders terminal progress bars for long ingestion runs.
package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Config controls bar rendering. Disabled managers swallow all calls so the
// same code path works in pipes and CI.
type Config struct {
	Enabled bool
	Writer  io.Writer
}

// Manager owns the mpb container behind one or more bars.
type Manager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

// Bar is one progress bar. All methods are safe on a disabled bar.
type Bar struct {
	bar     *mpb.Bar
	enabled bool
}

// NewManager builds a progress container writing to config.Writer (stderr by
// default).
func NewManager(config Config) *Manager {
	if !config.Enabled {
		return &Manager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &Manager{container: container, enabled: true}
}

// CreateBar adds a bar with the given total and label.
func (m *Manager) CreateBar(total int, description string) *Bar {
	if !m.enabled || m.container == nil {
		return &Bar{enabled: false}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bar := m.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " done ",
			),
			decor.OnComplete(
				decor.EwmaSpeed(0, "%.1f chunks/s", 30, decor.WCSyncSpace), "",
			),
		),
	)

	return &Bar{bar: bar, enabled: true}
}

// BatchCallback returns a callback matching the indexer's progress hook: it
// lazily creates a bar sized to the reported total and tracks cumulative
// completion.
func (m *Manager) BatchCallback(description string) func(done, total int) {
	var bar *Bar
	return func(done, total int) {
		if bar == nil {
			bar = m.CreateBar(total, description)
		}
		bar.SetCurrent(int64(done))
		if done >= total {
			bar.Complete()
		}
	}
}

// Increment advances the bar by one.
func (b *Bar) Increment() {
	if b.enabled && b.bar != nil {
		b.bar.Increment()
	}
}

// SetCurrent moves the bar to an absolute position.
func (b *Bar) SetCurrent(current int64) {
	if b.enabled && b.bar != nil {
		b.bar.SetCurrent(current)
	}
}

// SetTotal resizes the bar without completing it.
func (b *Bar) SetTotal(total int64) {
	if b.enabled && b.bar != nil {
		b.bar.SetTotal(total, false)
	}
}

// Complete marks the bar finished at its current position.
func (b *Bar) Complete() {
	if b.enabled && b.bar != nil {
		b.bar.SetTotal(b.bar.Current(), true)
	}
}

// Wait blocks until all bars have rendered their final state.
func (m *Manager) Wait() {
	if m.enabled && m.container != nil {
		m.container.Wait()
	}
}

// Shutdown abandons rendering immediately.
func (m *Manager) Shutdown() {
	if m.enabled && m.container != nil {
		m.container.Shutdown()
	}
}

// IsTTY reports whether the writer is an interactive terminal.
func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress decides whether bars render: always when forced,
// otherwise only on a terminal.
func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}
	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}
