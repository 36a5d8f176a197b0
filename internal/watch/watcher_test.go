package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"randompick/internal/errors"
	"randompick/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadItemsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0644))

	text, err := ReadItemsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", text)

	_, err = ReadItemsFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
}

func TestFollowerDeliversChanges(t *testing.T) {
	path := testutils.WriteItemsFile(t, t.TempDir(), "items.txt", "first")

	texts := make(chan string, 16)
	f, err := NewFollower(path, func(text string) { texts <- text })
	require.NoError(t, err)

	require.NoError(t, f.Start())
	defer f.Stop()
	assert.True(t, f.IsRunning())
	assert.Error(t, f.Start(), "double start is rejected")

	assert.Equal(t, "first", <-texts, "initial contents are delivered on start")

	// Give fsnotify a moment to settle its watches.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("second\nthird"), 0644))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case text := <-texts:
			if text == "second\nthird" {
				return
			}
		case <-deadline:
			t.Fatal("Timeout waiting for file change")
		}
	}
}

func TestFollowerIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("mine"), 0644))

	texts := make(chan string, 16)
	f, err := NewFollower(path, func(text string) { texts <- text })
	require.NoError(t, err)
	require.NoError(t, f.Start())
	defer f.Stop()
	<-texts

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("not mine"), 0644))

	select {
	case text := <-texts:
		t.Fatalf("unexpected delivery %q", text)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFollowerStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	f, err := NewFollower(path, func(string) {})
	require.NoError(t, err)
	require.NoError(t, f.Start())

	f.Stop()
	assert.False(t, f.IsRunning())
	f.Stop()
}

func TestFollowerMissingFile(t *testing.T) {
	f, err := NewFollower(filepath.Join(t.TempDir(), "nope.txt"), func(string) {})
	require.NoError(t, err)

	err = f.Start()
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
	assert.False(t, f.IsRunning())
}

func TestFollowerStopBeforeStart(t *testing.T) {
	path := testutils.WriteItemsFile(t, t.TempDir(), "items.txt", "x")

	f, err := NewFollower(path, func(string) {})
	require.NoError(t, err)

	f.Stop()
	err = f.Start()
	require.Error(t, err, "a stopped follower cannot be restarted")
	assert.False(t, f.IsRunning())
	f.Stop()
}

func TestFollowerSkipsTransientEmptySave(t *testing.T) {
	path := testutils.WriteItemsFile(t, t.TempDir(), "items.txt", "one\ntwo")

	texts := make(chan string, 16)
	f, err := NewFollower(path, func(text string) { texts <- text })
	require.NoError(t, err)
	require.NoError(t, f.Start())
	defer f.Stop()
	<-texts

	time.Sleep(50 * time.Millisecond)
	// Truncate, then write the new contents shortly after.
	require.NoError(t, os.WriteFile(path, nil, 0644))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("three"), 0644))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case text := <-texts:
			require.NotEmpty(t, text, "transient empty contents leaked to the sink")
			if text == "three" {
				// Nothing else may follow once the settle window passes.
				select {
				case late := <-texts:
					assert.NotEmpty(t, late)
				case <-time.After(2 * emptySettle):
				}
				return
			}
		case <-deadline:
			t.Fatal("Timeout waiting for file change")
		}
	}
}

func TestFollowerDeliversSettledEmptyFile(t *testing.T) {
	path := testutils.WriteItemsFile(t, t.TempDir(), "items.txt", "one")

	texts := make(chan string, 16)
	f, err := NewFollower(path, func(text string) { texts <- text })
	require.NoError(t, err)
	require.NoError(t, f.Start())
	defer f.Stop()
	<-texts

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	select {
	case text := <-texts:
		assert.Empty(t, text)
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for emptied file")
	}
}
