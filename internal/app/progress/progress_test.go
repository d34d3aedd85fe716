package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledManagerIsInert(t *testing.T) {
	manager := NewManager(Config{Enabled: false})
	bar := manager.CreateBar(10, "Indexing chunks")
	require.NotNil(t, bar)

	// None of these may panic or block.
	bar.Increment()
	bar.SetCurrent(5)
	bar.SetTotal(20)
	bar.Complete()
	manager.Wait()
	manager.Shutdown()
}

func TestBatchCallbackTracksCumulativeProgress(t *testing.T) {
	var out bytes.Buffer
	manager := NewManager(Config{Enabled: true, Writer: &out})

	callback := manager.BatchCallback("Indexing chunks")
	callback(32, 96)
	callback(64, 96)
	callback(96, 96)
	manager.Wait()

	assert.Contains(t, out.String(), "Indexing chunks")
}

func TestIsTTYRejectsBuffers(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestShouldShowProgressForced(t *testing.T) {
	assert.True(t, ShouldShowProgress(true))
}
