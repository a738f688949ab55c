// Package replylog persists every LLM exchange as one JSON line per
// record, so a game can be audited or replayed after the fact.
package replylog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"diplomacy-agent/internal/application/port/output"
)

var _ output.ReplyLogPort = (*Writer)(nil)

type Writer struct {
	mu   sync.Mutex
	file *os.File
}

// New creates a timestamped JSONL file under dir.
func New(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create reply log dir: %w", err)
	}

	filename := fmt.Sprintf("%s_replies.jsonl", time.Now().Format("2006-01-02_15-04-05"))
	file, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("create reply log file: %w", err)
	}

	return &Writer{file: file}, nil
}

// Record fills in the ID and timestamp when the caller left them empty and
// appends the record. Safe for concurrent powers.
func (w *Writer) Record(rec output.ReplyRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return
	}
	w.file.Write(data)
	w.file.WriteString("\n")
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
