// Package tracelog wraps zap with a console encoder that also mirrors
// everything it logs into an HTML-safe buffer, so a sweep's log can be
// embedded directly into the rendered report alongside the diagram.
package tracelog

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
	Logs   []string
}

// New builds a debug-level logger. A nil *Logger is valid and every
// method on it is a no-op, so callers that don't care about tracing can
// pass nil instead of threading an extra construction step everywhere.
func New() *Logger {
	logBuf := &bytes.Buffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(logBuf), zap.DebugLevel),
	)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{log: logger, logBuf: logBuf}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m"
	case zapcore.InfoLevel:
		colorCode = "\033[32m"
	case zapcore.WarnLevel:
		colorCode = "\033[33m"
	case zapcore.ErrorLevel:
		colorCode = "\033[31m"
	default:
		colorCode = "\033[0m"
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiPattern = regexp.MustCompile(`\033\[(\d+)m`)

var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	var openTags []string

	result.WriteString("<pre>")
	for _, match := range ansiPattern.FindAllStringIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(input[lastIndex:start])
		}
		code := input[start+2 : end-1]
		if color, ok := colorMap[code]; ok {
			if len(openTags) > 0 {
				result.WriteString("</span>")
				openTags = nil
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			openTags = append(openTags, color)
		} else if code == "0" && len(openTags) > 0 {
			result.WriteString("</span>")
			openTags = nil
		}
		lastIndex = end
	}
	if lastIndex < len(input) {
		result.WriteString(input[lastIndex:])
	}
	if len(openTags) > 0 {
		result.WriteString("</span>")
	}
	result.WriteString("</pre>")
	return result.String()
}

func (z *Logger) UpdateLogs() {
	if z == nil {
		return
	}
	z.Logs = []string{ansiToHTML(z.logBuf.String())}
}

func (z *Logger) ClearLogs() {
	if z == nil {
		return
	}
	z.logBuf.Reset()
	z.Logs = nil
}

func (z *Logger) Info(msg string, fields ...zap.Field) {
	if z == nil {
		return
	}
	z.log.Info(msg, fields...)
	z.UpdateLogs()
}

func (z *Logger) Debug(msg string, fields ...zap.Field) {
	if z == nil {
		return
	}
	z.log.Debug(msg, fields...)
	z.UpdateLogs()
}

func (z *Logger) Warn(msg string, fields ...zap.Field) {
	if z == nil {
		return
	}
	z.log.Warn(msg, fields...)
	z.UpdateLogs()
}

func (z *Logger) Error(msg string, fields ...zap.Field) {
	if z == nil {
		return
	}
	z.log.Error(msg, fields...)
	z.UpdateLogs()
}

func (z *Logger) Fatal(msg string, fields ...zap.Field) {
	if z == nil {
		return
	}
	z.log.Fatal(msg, fields...)
	z.UpdateLogs()
}
