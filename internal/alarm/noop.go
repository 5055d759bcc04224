package alarm

import "github.com/sirupsen/logrus"

// Compile-time interface checks.
var (
	_ Notifier = NoopNotifier{}
	_ Sounder  = NoopSounder{}
)

// NoopNotifier is used when desktop notifications are disabled by
// configuration. Disabled is a valid configuration, not an error.
type NoopNotifier struct{}

func (NoopNotifier) Notify(message string) error {
	logrus.Debugf("notification disabled, dropping %q", message)
	return nil
}

// NoopSounder is used when sound is disabled or no audio device exists.
type NoopSounder struct{}

func (NoopSounder) Play(soundID string) error {
	logrus.Debugf("sound disabled, dropping %q", soundID)
	return nil
}
