package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatterBasic(t *testing.T) {
	coloured := false
	f := &TextFormatter{TimestampFormat: time.RFC3339, Coloured: &coloured}
	entry := &logrus.Entry{
		Time:    time.Date(2021, 12, 8, 10, 0, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "fell back",
		Data: logrus.Fields{
			"fallback": "AntiClockwise",
			"error":    errors.New("ambiguous winding"),
		},
	}
	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t,
		`time=2021-12-08T10:00:00Z level=warning msg="fell back" error="ambiguous winding" fallback=AntiClockwise `+"\n",
		string(out),
	)
}

func TestTextFormatterColoured(t *testing.T) {
	coloured := true
	f := &TextFormatter{Coloured: &coloured}
	out, err := f.Format(&logrus.Entry{Level: logrus.InfoLevel, Message: "hello"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "INFO")
	assert.Contains(t, string(out), "\x1b[")
}

func TestSetters(t *testing.T) {
	defer log.SetLevel(WarnLevel)
	defer SetFormat("text")

	require.NoError(t, SetLevel("trace"))
	assert.True(t, IsTrace())
	require.NoError(t, SetLevel("info"))
	assert.False(t, IsDebug())
	assert.Error(t, SetLevel("loud"))

	assert.NoError(t, SetFormat("json"))
	assert.Error(t, SetFormat("xml"))

	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetOutput("stderr")
	WithField("polygon", "square").Info("loaded")
	assert.Contains(t, buf.String(), `"polygon":"square"`)
}
