package term

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// Size holds terminal dimensions in character cells.
type Size struct {
	Columns int
	Rows    int
}

// SizeWatcher caches the terminal dimensions and refreshes them on SIGWINCH,
// avoiding an ioctl per render. The onChange callback runs on a dedicated
// goroutine; callers usually forward it into their event channel.
type SizeWatcher struct {
	mu       sync.RWMutex
	cols     int
	rows     int
	onChange func(Size)
	sigCh    chan os.Signal
	done     chan struct{}
	stopOnce sync.Once
}

// NewSizeWatcher creates a watcher with the current dimensions already
// cached. onChange may be nil.
func NewSizeWatcher(onChange func(Size)) *SizeWatcher {
	w := &SizeWatcher{
		onChange: onChange,
		done:     make(chan struct{}),
	}
	w.refresh()
	return w
}

// Start begins listening for SIGWINCH.
func (w *SizeWatcher) Start() {
	w.sigCh = make(chan os.Signal, 1)
	signal.Notify(w.sigCh, syscall.SIGWINCH)
	go func() {
		for {
			select {
			case <-w.sigCh:
				w.refresh()
				if w.onChange != nil {
					w.onChange(w.Size())
				}
			case <-w.done:
				return
			}
		}
	}()
}

// Stop ends SIGWINCH delivery and the background goroutine.
func (w *SizeWatcher) Stop() {
	w.stopOnce.Do(func() {
		if w.sigCh != nil {
			signal.Stop(w.sigCh)
		}
		close(w.done)
	})
}

// Size returns the cached dimensions, defaulting to 80x24 when the terminal
// size could not be determined.
func (w *SizeWatcher) Size() Size {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s := Size{Columns: w.cols, Rows: w.rows}
	if s.Columns <= 0 {
		s.Columns = 80
	}
	if s.Rows <= 0 {
		s.Rows = 24
	}
	return s
}

// refresh queries the kernel for the current dimensions and caches them.
func (w *SizeWatcher) refresh() {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return
	}
	w.mu.Lock()
	if ws.Col > 0 {
		w.cols = int(ws.Col)
	}
	if ws.Row > 0 {
		w.rows = int(ws.Row)
	}
	w.mu.Unlock()
}
