package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/apra1107-crypto/erp-sub002/app/document"
)

// ShareDispatcher hands a generated artifact to the platform share/print
// surface. Implementations report only success or failure, never content.
type ShareDispatcher interface {
	Dispatch(filename, html string) error
}

// FileShareDispatcher writes the artifact into a spool directory where the
// print engine (or a download link) picks it up.
type FileShareDispatcher struct {
	Dir string
}

func (d *FileShareDispatcher) Dispatch(filename, html string) error {
	dir := d.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write receipt file: %v", err)
	}
	log.Printf("Receipt dispatched to %s", path)
	return nil
}

// ReceiptGenerator serializes the render -> file -> share pipeline. A
// double-tap on "Share" must not open two dialogs, so a second call while
// one is in flight no-ops instead of queueing. The guard lives on the
// coordinator, not in package state, so separate instances cannot leak into
// each other.
type ReceiptGenerator struct {
	mu         sync.Mutex
	dispatcher ShareDispatcher
}

func NewReceiptGenerator(dispatcher ShareDispatcher) *ReceiptGenerator {
	return &ReceiptGenerator{dispatcher: dispatcher}
}

// Share renders the receipt and hands it to the dispatcher. The first
// return is false when another generation was already in flight and this
// call was skipped. Dispatcher errors propagate to the caller; the guard is
// released either way.
func (g *ReceiptGenerator) Share(doc *document.ReceiptDocument) (bool, error) {
	if !g.mu.TryLock() {
		return false, nil
	}
	defer g.mu.Unlock()

	html, err := document.RenderReceiptHTML(doc)
	if err != nil {
		return true, err
	}

	filename := fmt.Sprintf("receipt_%s_%d.html", sanitize(doc.ReceiptNo), time.Now().Unix())
	if err := g.dispatcher.Dispatch(filename, html); err != nil {
		return true, err
	}
	return true, nil
}

func sanitize(s string) string {
	if s == "" {
		return "draft"
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
