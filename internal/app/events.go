// internal/app/events.go
package app

import (
	"go-minion-arena/internal/event"

	"github.com/rs/zerolog"
)

// eventLogger пишет все доменные события в лог на уровне debug.
type eventLogger struct {
	logger zerolog.Logger
}

// OnEvent реализует интерфейс event.Listener.
func (l *eventLogger) OnEvent(e event.Event) {
	ev := l.logger.Debug().Str("event", string(e.Type))
	switch data := e.Data.(type) {
	case event.TargetChange:
		ev = ev.Uint64("hunter", uint64(data.Hunter)).
			Uint64("previous", uint64(data.Previous)).
			Uint64("target", uint64(data.Target))
	case event.EngagementChange:
		ev = ev.Uint64("entity", uint64(data.Entity)).Float32("distance", data.Distance)
	case event.PlacementChange:
		ev = ev.Uint64("entity", uint64(data.Entity)).
			Str("prototype", data.Prototype).
			Floats32("position", data.Position[:])
	}
	ev.Send()
}
