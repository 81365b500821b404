package tui

import (
	"sync"

	"github.com/alexisbeaulieu97/frota/internal/theme"
	"github.com/alexisbeaulieu97/frota/internal/tui/components"
)

// look is the model's view of the shared theme. The theme store updates it
// synchronously through a subscription, so every screen renders the new
// styles in the same pass that toggled them.
type look struct {
	mu     sync.RWMutex
	styles components.Styles
}

func newLook(t theme.Theme) *look {
	return &look{styles: components.NewStyles(t)}
}

func (l *look) apply(t theme.Theme) {
	styles := components.NewStyles(t)
	l.mu.Lock()
	l.styles = styles
	l.mu.Unlock()
}

func (l *look) get() components.Styles {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.styles
}
