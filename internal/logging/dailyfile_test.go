package logging

import (
	"os"
	"testing"
	"time"

	"github.com/hummingbot/gateway-app/internal/logtail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)

func TestDailyFile_WritesDatedFile(t *testing.T) {
	base := t.TempDir()
	paths := logtail.FilePath(base, testDay)

	d := NewDailyFile(base + "/logs")
	d.now = func() time.Time { return testDay }
	t.Cleanup(func() { d.Close() })

	n, err := d.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	data, err := os.ReadFile(paths)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestDailyFile_AppendsAcrossWrites(t *testing.T) {
	base := t.TempDir()

	d := NewDailyFile(base + "/logs")
	d.now = func() time.Time { return testDay }
	t.Cleanup(func() { d.Close() })

	_, err := d.Write([]byte("one\n"))
	require.NoError(t, err)
	_, err = d.Write([]byte("two\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(logtail.FilePath(base, testDay))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestDailyFile_RollsOverAtMidnight(t *testing.T) {
	base := t.TempDir()
	day := testDay
	next := testDay.AddDate(0, 0, 1)

	d := NewDailyFile(base + "/logs")
	current := day
	d.now = func() time.Time { return current }
	t.Cleanup(func() { d.Close() })

	_, err := d.Write([]byte("before midnight\n"))
	require.NoError(t, err)

	current = next
	_, err = d.Write([]byte("after midnight\n"))
	require.NoError(t, err)

	first, err := os.ReadFile(logtail.FilePath(base, day))
	require.NoError(t, err)
	assert.Equal(t, "before midnight\n", string(first))

	second, err := os.ReadFile(logtail.FilePath(base, next))
	require.NoError(t, err)
	assert.Equal(t, "after midnight\n", string(second))
}

func TestDailyFile_VisibleToTailer(t *testing.T) {
	base := t.TempDir()

	log := New(NewDailyFile(base+"/logs"), "info")
	log.Info().Str("op", "config.read").Msg("config read")

	res, err := logtail.Tail(base, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Lines)
	assert.Contains(t, res.Text, "config read")
}

func TestDailyFile_CloseIdempotent(t *testing.T) {
	d := NewDailyFile(t.TempDir() + "/logs")
	require.NoError(t, d.Close())

	_, err := d.Write([]byte("x\n"))
	require.NoError(t, err)
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
}
