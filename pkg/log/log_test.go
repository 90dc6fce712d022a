package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, logrus.InfoLevel)

	l.Debugf("hidden %d", 1)
	l.WithFields(Fields{"pc": "0x0100"}).Infof("visible %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug entry to be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible 2") || !strings.Contains(out, "pc=0x0100") {
		t.Errorf("expected info entry with fields, got %q", out)
	}
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Infof("nothing")
	if l.WithFields(Fields{"a": 1}) == nil {
		t.Errorf("expected WithFields to return a logger")
	}
}
