// Package logrus adapts a *logrus.Entry to the delimcodec Logger interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/delimcodec"
)

type Logger struct{ E *logrus.Entry }

var _ delimcodec.Logger = Logger{}

func New(e *logrus.Entry) Logger { return Logger{E: e} }

func (l Logger) Debug(msg string, f delimcodec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f delimcodec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l Logger) Warn(msg string, f delimcodec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l Logger) Error(msg string, f delimcodec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
