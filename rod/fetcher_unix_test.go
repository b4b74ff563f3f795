//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/pantry/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Close_StopsChrome(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	fetcher := rod.NewFetcher(manager)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)

	// Signal 0 probes for the process without touching it.
	require.NoError(t, syscall.Kill(pid, syscall.Signal(0)), "chrome should be running")

	require.NoError(t, fetcher.Close())

	assert.Eventually(t, func() bool {
		return syscall.Kill(pid, syscall.Signal(0)) != nil
	}, 2*time.Second, 50*time.Millisecond, "chrome should exit on Close")
}
