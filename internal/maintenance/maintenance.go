package maintenance

import (
	"log/slog"
	"sync/atomic"

	"shopadmin/internal/apis/backend/failure"
)

// Mode is the process-wide maintenance switch. Entering it twice has the
// effect of entering it once.
type Mode struct {
	active  atomic.Bool
	log     *slog.Logger
	onEnter func()
}

func New(log *slog.Logger, onEnter func()) *Mode {
	if log == nil {
		log = slog.Default()
	}
	return &Mode{log: log, onEnter: onEnter}
}

// Navigate implements failure.Navigator.
func (m *Mode) Navigate(location string) {
	if location != failure.MaintenanceLocation {
		m.log.Debug("navigation ignored", "location", location)
		return
	}
	m.Enter()
}

// Enter reports whether this call switched the mode on.
func (m *Mode) Enter() bool {
	if !m.active.CompareAndSwap(false, true) {
		return false
	}
	m.log.Warn("maintenance mode on")
	if m.onEnter != nil {
		m.onEnter()
	}
	return true
}

func (m *Mode) Leave() bool {
	if !m.active.CompareAndSwap(true, false) {
		return false
	}
	m.log.Info("maintenance mode off")
	return true
}

func (m *Mode) Active() bool {
	return m.active.Load()
}
