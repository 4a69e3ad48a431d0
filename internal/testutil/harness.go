package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/hadesgeo/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an application test run.
type HarnessResult struct {
	LogOutput  string
	Err        error
	OutputPath string
}

// RunAppTest writes the given files into a temp directory, runs the
// application against "setup.hcl" from that directory and captures logs.
// The cfg callback may adjust the app configuration before the run; the
// scene is always written to OutputPath inside the temp directory.
func RunAppTest(t *testing.T, files map[string]string, cfg func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	outputPath := filepath.Join(tmpDir, "scene.hcl")
	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: filepath.Join(tmpDir, "setup.hcl"),
		OutputPath: outputPath,
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)
	if cfg != nil {
		cfg(appConfig)
	}

	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, appConfig)
	runErr := testApp.Run(context.Background(), appConfig)

	return &HarnessResult{
		LogOutput:  logBuffer.String(),
		Err:        runErr,
		OutputPath: appConfig.OutputPath,
	}
}
