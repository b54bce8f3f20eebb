package log

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var isColoured = isatty.IsTerminal(os.Stderr.Fd()) && runtime.GOOS != "windows"

// Single line text output. Level tags are coloured when stderr is a terminal.
type TextFormatter struct {
	TimestampFormat string
	// Force colouring on or off regardless of the terminal. Nil means detect.
	Coloured *bool
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = time.RFC3339Nano
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	coloured := isColoured
	if f.Coloured != nil {
		coloured = *f.Coloured
	}

	b := &bytes.Buffer{}
	if coloured {
		f.printColoured(b, entry, keys, timestampFormat)
	} else {
		f.printBasic(b, entry, keys, timestampFormat)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *TextFormatter) printBasic(b *bytes.Buffer, entry *logrus.Entry, keys []string, timestampFormat string) {
	printField(b, "time", entry.Time.Format(timestampFormat))
	printField(b, "level", entry.Level.String())
	printField(b, "msg", entry.Message)
	for _, key := range keys {
		printField(b, key, entry.Data[key])
	}
}

func (f *TextFormatter) printColoured(b *bytes.Buffer, entry *logrus.Entry, keys []string, timestampFormat string) {
	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[0:4]
	}
	tag := levelColour(entry.Level, level)

	fmt.Fprintf(b, "%s %s %s", aurora.Gray(12, "["+entry.Time.Format(timestampFormat)+"]"), tag, entry.Message)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%+v", levelColour(entry.Level, k), entry.Data[k])
	}
}

func levelColour(level logrus.Level, s string) aurora.Value {
	switch level {
	case logrus.InfoLevel:
		return aurora.Green(s)
	case logrus.WarnLevel:
		return aurora.Yellow(s)
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return aurora.Red(s)
	default:
		return aurora.Blue(s)
	}
}

func printField(b *bytes.Buffer, key string, value interface{}) {
	b.WriteString(key)
	b.WriteByte('=')

	var s string
	switch value := value.(type) {
	case string:
		s = value
	case error:
		s = value.Error()
	default:
		s = fmt.Sprint(value)
	}
	if needsQuoting(s) {
		fmt.Fprintf(b, "%q", s)
	} else {
		b.WriteString(s)
	}
	b.WriteByte(' ')
}

func needsQuoting(text string) bool {
	if text == "" {
		return true
	}
	for _, ch := range text {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '.' || ch == ':' || ch == '+') {
			return true
		}
	}
	return false
}
