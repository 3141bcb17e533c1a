package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"notedesk/internal/pkg/logger"
)

// Desktop delivers notifications through the host OS notification system.
// Delivery is best-effort; the persisted in-app notification record is the
// durable source of truth regardless of what the OS does with the toast.
type Desktop struct {
	log logger.Logger
}

// NewDesktop creates a new desktop notifier.
func NewDesktop(log logger.Logger) *Desktop {
	return &Desktop{log: log}
}

// Deliver posts a native notification. A silent delivery skips the
// audible alert.
func (d *Desktop) Deliver(title, body string, silent bool) error {
	var err error
	if silent {
		err = beeep.Notify(title, body, "")
	} else {
		err = beeep.Alert(title, body, "")
	}
	if err != nil {
		return fmt.Errorf("failed to post native notification: %w", err)
	}
	d.log.Debug(fmt.Sprintf("Delivered native notification: %s", title))
	return nil
}
