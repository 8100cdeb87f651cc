package checks

import (
	"log/slog"
	"testing"

	"checkrun/pkg/runner"
	"checkrun/pkg/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCheck_Run_InSync(t *testing.T) {
	fs := useMemFs(t)
	test.CreateTestFile(t, fs, "requirements.txt", "black==24.3.0\npytest==8.1.1\n")
	test.CreateTestFile(t, fs, "requirements.lock", "black==24.3.0\npytest==8.1.1\n")

	mock := test.NewMockCommandRunner()
	logger := test.NewMockLogger(slog.LevelDebug)

	check := &SyncCheck{SyncName: "requirements", Path: "requirements.txt", Source: "requirements.lock"}
	require.NoError(t, check.Run(mock, logger))
	assert.Empty(t, mock.Commands, "sync checks run no external commands")
}

func TestSyncCheck_Run_OutOfSync(t *testing.T) {
	fs := useMemFs(t)
	test.CreateTestFile(t, fs, "requirements.txt", "black==23.1.0\n")
	test.CreateTestFile(t, fs, "requirements.lock", "black==24.3.0\n")

	mock := test.NewMockCommandRunner()
	logger := test.NewMockLogger(slog.LevelInfo)

	check := &SyncCheck{SyncName: "requirements", Path: "requirements.txt", Source: "requirements.lock"}
	err := check.Run(mock, logger)
	require.Error(t, err)

	var checkErr *CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, 1, checkErr.Status)
	assert.Contains(t, err.Error(), "out of sync")
	assert.Contains(t, err.Error(), "--- diff ---")
	assert.Equal(t, 1, runner.ExitStatus(err))
}

func TestSyncCheck_Run_MissingPath(t *testing.T) {
	fs := useMemFs(t)
	test.CreateTestFile(t, fs, "requirements.lock", "black==24.3.0\n")

	mock := test.NewMockCommandRunner()
	logger := test.NewMockLogger(slog.LevelInfo)

	check := &SyncCheck{SyncName: "requirements", Path: "requirements.txt", Source: "requirements.lock"}
	err := check.Run(mock, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read requirements.txt")
}

func TestSyncCheck_Run_MissingSource(t *testing.T) {
	fs := useMemFs(t)
	test.CreateTestFile(t, fs, "requirements.txt", "black==24.3.0\n")

	mock := test.NewMockCommandRunner()
	logger := test.NewMockLogger(slog.LevelInfo)

	check := &SyncCheck{SyncName: "requirements", Path: "requirements.txt", Source: "requirements.lock"}
	err := check.Run(mock, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read source requirements.lock")
}

func TestSyncCheck_Descriptions(t *testing.T) {
	check := &SyncCheck{SyncName: "requirements", Path: "requirements.txt", Source: "requirements.lock"}
	assert.Equal(t, "requirements", check.Name())
	assert.Equal(t, "Checking requirements.txt is in sync...", check.Description())
	assert.Equal(t, []string{"compare: requirements.txt against requirements.lock"}, check.ExecutionDetails())
}
