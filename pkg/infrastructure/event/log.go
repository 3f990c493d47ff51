package event

import (
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/service"
)

// LogDispatcher writes domain events to the structured log. Used when no
// message broker is configured.
type LogDispatcher struct{}

var _ service.EventDispatcher = LogDispatcher{}

func (LogDispatcher) Dispatch(event service.Event) error {
	log.WithFields(log.Fields{
		"event":   event.Type(),
		"payload": event,
	}).Info("domain event")
	return nil
}
