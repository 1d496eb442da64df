package stamp

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yiblet/dateform/internal/dateform"
)

type emitter interface {
	emit(record lineRecord, now time.Time) error
}

// textEmitter writes "<stamp> <line>", or just the stamp for empty lines.
type textEmitter struct {
	layout *dateform.Layout
	writer io.Writer
}

func newTextEmitter(layout *dateform.Layout, writer io.Writer) textEmitter {
	return textEmitter{layout: layout, writer: writer}
}

func (e textEmitter) emit(record lineRecord, now time.Time) error {
	out := e.layout.Format(now)
	if record.text != "" {
		if out != "" {
			out += " "
		}
		out += record.text
	}
	if _, err := io.WriteString(e.writer, out); err != nil {
		return err
	}
	if record.hasNewline {
		if _, err := io.WriteString(e.writer, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// jsonEmitter outputs JSONL, merging the stamp into objects and wrapping
// everything else.
type jsonEmitter struct {
	layout  *dateform.Layout
	writer  io.Writer
	jsonKey string
}

func newJSONEmitter(layout *dateform.Layout, writer io.Writer, jsonKey string) jsonEmitter {
	return jsonEmitter{layout: layout, writer: writer, jsonKey: jsonKey}
}

func (e jsonEmitter) emit(record lineRecord, now time.Time) error {
	result := e.merge(record.text, e.layout.Format(now))

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if _, err := e.writer.Write(jsonBytes); err != nil {
		return err
	}

	// Only add newline if the original record had one
	if record.hasNewline {
		if _, err := e.writer.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}

// merge sets the stamp on JSON objects; arrays, primitives and invalid JSON
// are wrapped as {key: stamp, "line": value}.
func (e jsonEmitter) merge(line, stamp string) any {
	var parsed any
	if err := json.Unmarshal([]byte(line), &parsed); err != nil {
		return map[string]any{
			e.jsonKey: stamp,
			"line":    line,
		}
	}

	if obj, ok := parsed.(map[string]any); ok {
		obj[e.jsonKey] = stamp
		return obj
	}
	return map[string]any{
		e.jsonKey: stamp,
		"line":    parsed,
	}
}
