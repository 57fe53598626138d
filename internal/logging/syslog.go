//go:build unix

package logging

import (
	"log/syslog"

	"github.com/sirupsen/logrus"
	lsyslog "github.com/sirupsen/logrus/hooks/syslog"
)

// newSyslogHook connects to the local syslog daemon with the user facility
func newSyslogHook(tag string) (logrus.Hook, error) {
	return lsyslog.NewSyslogHook("", "", syslog.LOG_USER|syslog.LOG_INFO, tag)
}
