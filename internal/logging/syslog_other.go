//go:build !unix

package logging

import (
	"errors"

	"github.com/sirupsen/logrus"
)

func newSyslogHook(tag string) (logrus.Hook, error) {
	return nil, errors.New("syslog is not available on this platform")
}
