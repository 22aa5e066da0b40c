package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/apra1107-crypto/erp-sub002/app/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	delay time.Duration
	err   error
	calls int32
}

func (d *fakeDispatcher) Dispatch(filename, html string) error {
	atomic.AddInt32(&d.calls, 1)
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	return d.err
}

func testDoc() *document.ReceiptDocument {
	return &document.ReceiptDocument{
		ReceiptNo:     "RCPT-2026-000042",
		Date:          "15 Apr 2026",
		StudentName:   "Aarav Sharma",
		GrandTotal:    1200,
		AmountInWords: "One Thousand Two Hundred Rupees Only",
		PaymentMode:   document.PaymentModeCounter,
	}
}

func TestShareDispatchesOnce(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	generator := NewReceiptGenerator(dispatcher)

	dispatched, err := generator.Share(testDoc())
	require.NoError(t, err)
	assert.True(t, dispatched)
	assert.Equal(t, int32(1), atomic.LoadInt32(&dispatcher.calls))
}

func TestShareSkipsConcurrentCall(t *testing.T) {
	dispatcher := &fakeDispatcher{delay: 100 * time.Millisecond}
	generator := NewReceiptGenerator(dispatcher)

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := generator.Share(testDoc())
			assert.NoError(t, err)
			results[i] = ok
		}(i)
	}
	wg.Wait()

	// A double-tap produces exactly one dispatch; the other call no-ops.
	assert.Equal(t, int32(1), atomic.LoadInt32(&dispatcher.calls))
	assert.NotEqual(t, results[0], results[1])
}

func TestShareSequentialCallsBothDispatch(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	generator := NewReceiptGenerator(dispatcher)

	for i := 0; i < 2; i++ {
		dispatched, err := generator.Share(testDoc())
		require.NoError(t, err)
		assert.True(t, dispatched)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&dispatcher.calls))
}

func TestShareDispatcherError(t *testing.T) {
	dispatcher := &fakeDispatcher{err: errors.New("spool full")}
	generator := NewReceiptGenerator(dispatcher)

	dispatched, err := generator.Share(testDoc())
	assert.True(t, dispatched)
	assert.EqualError(t, err, "spool full")

	// Guard is released after a failure.
	dispatcher.err = nil
	dispatched, err = generator.Share(testDoc())
	assert.True(t, dispatched)
	assert.NoError(t, err)
}

func TestFileShareDispatcherWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	dispatcher := &FileShareDispatcher{Dir: dir}
	generator := NewReceiptGenerator(dispatcher)

	dispatched, err := generator.Share(testDoc())
	require.NoError(t, err)
	assert.True(t, dispatched)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "receipt_RCPT-2026-000042_"))

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), "PAID")
	assert.Contains(t, string(content), "Aarav Sharma")
}
