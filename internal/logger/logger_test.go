package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	captureOutput(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := captureOutput(t, true)

	Debug("classified %s as %s", "donut.json", "json")

	assert.Equal(t, "[DEBUG] classified donut.json as json\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := captureOutput(t, false)

	Debug("test message")

	assert.Empty(t, buf.String())
}

func TestInfo(t *testing.T) {
	buf := captureOutput(t, true)

	Info("opened %d connectors", 2)

	assert.Equal(t, "[INFO] opened 2 connectors\n", buf.String())
}

func TestInfo_WhenNotVerbose(t *testing.T) {
	buf := captureOutput(t, false)

	Info("hidden")

	assert.Empty(t, buf.String())
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	for _, v := range []bool{true, false} {
		buf := captureOutput(t, v)

		Warn("record %d has no %q", 0, "ppu")

		assert.Equal(t, "[WARN] record 0 has no \"ppu\"\n", buf.String())
	}
}

func TestSection(t *testing.T) {
	buf := captureOutput(t, true)

	Section("person.xml")

	assert.Equal(t, "\n=== person.xml ===\n", buf.String())
}

func TestSection_WhenNotVerbose(t *testing.T) {
	buf := captureOutput(t, false)

	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	captureOutput(t, false)
	SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}(i)
	}
	wg.Wait()
	// Test passes if no race conditions
}
