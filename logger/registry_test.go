package logger

import (
	"io/fs"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_SameNameSameLogger(t *testing.T) {
	captureConsole(t)

	first, err := Get("registry", Config{})
	require.NoError(t, err)
	second, err := Get("registry", Config{})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "registry", first.Name())
}

func TestGet_DifferentNamesDifferentLoggers(t *testing.T) {
	captureConsole(t)

	first, err := Get("registry-a", Config{})
	require.NoError(t, err)
	second, err := Get("registry-b", Config{})
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestGet_Levels(t *testing.T) {
	captureConsole(t)

	t.Run("default level is INFO", func(t *testing.T) {
		log, err := Get("level-default", Config{})
		require.NoError(t, err)
		assert.Equal(t, InfoLevel, log.Level())
	})

	t.Run("configured level is kept", func(t *testing.T) {
		log, err := Get("level-debug", Config{Level: DebugLevel})
		require.NoError(t, err)
		assert.Equal(t, DebugLevel, log.Level())
	})

	t.Run("config of later calls is ignored", func(t *testing.T) {
		_, err := Get("level-sticky", Config{Level: WarningLevel})
		require.NoError(t, err)
		log, err := Get("level-sticky", Config{Level: TraceLevel})
		require.NoError(t, err)
		assert.Equal(t, WarningLevel, log.Level())
	})
}

func TestCurrentLevel(t *testing.T) {
	captureConsole(t)

	_, ok := CurrentLevel("not-created")
	assert.False(t, ok)

	_, err := Get("current", Config{Level: ErrorLevel})
	require.NoError(t, err)

	level, ok := CurrentLevel("current")
	require.True(t, ok)
	assert.Equal(t, ErrorLevel, level)
}

func TestGet_ConcurrentSameName(t *testing.T) {
	captureConsole(t)

	const numGoroutines = 64
	got := make([]*Logger, numGoroutines)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range got {
		go func(i int) {
			defer wg.Done()
			log, err := Get("contended", Config{})
			if err == nil {
				got[i] = log
			}
		}(i)
	}
	wg.Wait()

	require.NotNil(t, got[0])
	for i, log := range got {
		assert.Same(t, got[0], log, "goroutine %d got a different logger", i)
	}
}

func TestGet_UnwritableFile(t *testing.T) {
	captureConsole(t)

	path := filepath.Join(t.TempDir(), "missing", "out.log")
	log, err := Get("unwritable", Config{OutputFile: path})
	require.Error(t, err)
	assert.Nil(t, log)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, path, pathErr.Path)

	_, ok := CurrentLevel("unwritable")
	assert.False(t, ok, "failed creation must not register the name")
}
