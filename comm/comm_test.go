package comm

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_FiltersDebugUnlessVerbose(t *testing.T) {
	output := captureJSONLogs(t, func() {
		Debugf("hidden %d", 1)
		Logf("shown %d", 2)
	})

	require.Len(t, output, 1)
	assert.Equal(t, "shown 2", output[0]["message"])
	assert.Equal(t, "info", output[0]["level"])
}

func TestResult(t *testing.T) {
	output := captureJSONLogs(t, func() {
		ResultOrPrint(map[string]string{"@type": "ok"}, func() {
			t.Fatal("printer must not be called in json mode")
		})
	})

	require.Len(t, output, 1)
	assert.Equal(t, "result", output[0]["type"])
	assert.Equal(t, map[string]any{"@type": "ok"}, output[0]["value"])
}

func TestPrompt_JSONMode(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	oldStdin := os.Stdin
	os.Stdin = r
	stdinScanner = nil
	defer func() {
		os.Stdin = oldStdin
		stdinScanner = nil
	}()

	_, err = w.WriteString(`{"response": "12345"}` + "\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var answer string
	output := captureJSONLogs(t, func() {
		answer = Prompt("Code?", false)
	})

	assert.Equal(t, "12345", answer)
	require.Len(t, output, 1)
	assert.Equal(t, "prompt", output[0]["type"])
	assert.Equal(t, "Code?", output[0]["question"])
}

func TestProgress_JSONMode(t *testing.T) {
	oldInterval := printInterval
	printInterval = 0
	defer func() { printInterval = oldInterval }()

	output := captureJSONLogs(t, func() {
		StartProgressWithTotalBytes(1024)
		Progress(0.5)
		EndProgress()
	})

	require.Len(t, output, 1)
	assert.Equal(t, "progress", output[0]["type"])
	assert.InDelta(t, 50.0, output[0]["percentage"], 0.001)
}
