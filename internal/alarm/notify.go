package alarm

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Compile-time interface check.
var _ Notifier = (*DesktopNotifier)(nil)

// DesktopNotifier sends alarm messages through the system notification
// service (freedesktop on Linux, NSUserNotification on macOS, toast on
// Windows).
type DesktopNotifier struct {
	title string
}

// NewDesktopNotifier creates a notifier that tags notifications with title.
func NewDesktopNotifier(title string) *DesktopNotifier {
	return &DesktopNotifier{title: title}
}

// Notify sends the message. A missing or failing notification service is
// reported as ErrUnavailable.
func (n *DesktopNotifier) Notify(message string) error {
	if err := beeep.Notify(n.title, message, ""); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
