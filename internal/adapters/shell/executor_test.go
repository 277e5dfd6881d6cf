package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rnbundle/internal/adapters/shell"
	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Run_StreamsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	var stdout, stderr bytes.Buffer
	executor := shell.NewExecutorWithOutput(mockLogger, &stdout, &stderr)

	status, err := executor.Run(context.Background(), domain.Invocation{
		Name: "echo",
		Path: "sh",
		Args: []string{"-c", "echo line1; echo line2 >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)

	assert.True(t, status.Success())
	assert.Equal(t, "line1\n", stdout.String())
	assert.Equal(t, "line2\n", stderr.String())
}

func TestExecutor_Run_NonZeroExitIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	executor := shell.NewExecutorWithOutput(mockLogger, nil, nil)

	status, err := executor.Run(context.Background(), domain.Invocation{
		Name: "failing",
		Path: "sh",
		Args: []string{"-c", "exit 3"},
	})
	require.NoError(t, err)

	assert.False(t, status.Success())
	assert.Equal(t, domain.ExitStatus(3), status)
}

func TestExecutor_Run_SpawnError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	executor := shell.NewExecutorWithOutput(mockLogger, nil, nil)

	_, err := executor.Run(context.Background(), domain.Invocation{
		Name: "missing",
		Path: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start tool")
}

func TestExecutor_Run_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	executor := shell.NewExecutorWithOutput(mockLogger, nil, nil)

	status, err := executor.Run(context.Background(), domain.Invocation{
		Name: "touch",
		Path: "sh",
		Args: []string{"-c", "echo ok > marker.txt"},
		Dir:  dir,
	})
	require.NoError(t, err)
	require.True(t, status.Success())

	data, err := os.ReadFile(filepath.Join(dir, "marker.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ok\n", string(data))
}
