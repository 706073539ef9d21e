package worker

import (
	"github.com/spec-kit/pharmacy-booking/internal/notify"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notifier *notify.Notifier) {
	if notifier == nil {
		return
	}
	notifier.RegisterHandlers()
}
