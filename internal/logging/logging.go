// Package logging writes one JSON object per line, the format shared by the
// request logger, migrations, tracing setup and content loading.
package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout
	loc           = time.Local
)

// Setup sets the destination and the timezone used for the "ts" field.
func Setup(w io.Writer, l *time.Location) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		out = w
	}
	if l != nil {
		loc = l
	}
}

// Location returns the configured timezone.
func Location() *time.Location {
	mu.Lock()
	defer mu.Unlock()
	return loc
}

func Info(component, event string, fields map[string]any) {
	emit("info", component, event, fields)
}

func Warn(component, event string, fields map[string]any) {
	emit("warn", component, event, fields)
}

func Error(component, event string, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	if err != nil {
		fields["error_message"] = err.Error()
	}
	emit("error", component, event, fields)
}

func emit(level, component, event string, fields map[string]any) {
	data := make(map[string]any, len(fields)+4)
	for k, v := range fields {
		data[k] = v
	}
	data["level"] = level
	data["component"] = component
	data["event"] = event

	mu.Lock()
	w, l := out, loc
	mu.Unlock()
	Write(w, l, data)
}

// Write stamps data with "ts" and encodes it as a single line to w.
func Write(w io.Writer, l *time.Location, data map[string]any) {
	if l == nil {
		l = time.Local
	}
	data["ts"] = time.Now().In(l).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal log entry: %v", err)
		return
	}
	b = append(b, '\n')
	mu.Lock()
	defer mu.Unlock()
	_, _ = w.Write(b)
}
