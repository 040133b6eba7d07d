package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hummingbot/gateway-app/internal/logtail"
)

// DailyFile is an io.Writer appending to the gateway's dated log file
// under dir, re-opening when the calendar date rolls over. It performs
// no rotation or cleanup of prior days' files; the dated name alone
// selects the target, and old files are left in place for tailing.
type DailyFile struct {
	dir string
	now func() time.Time

	mu   sync.Mutex
	file *os.File
	day  string
}

// NewDailyFile returns a writer for the logs directory dir. The
// directory is created on first write.
func NewDailyFile(dir string) *DailyFile {
	return &DailyFile{dir: dir, now: time.Now}
}

func (d *DailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	day := now.Format("2006-01-02")
	if d.file == nil || day != d.day {
		if err := d.open(now, day); err != nil {
			return 0, err
		}
	}
	return d.file.Write(p)
}

func (d *DailyFile) open(now time.Time, day string) error {
	if d.file != nil {
		d.file.Close()
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create log dir %s: %w", d.dir, err)
	}
	path := filepath.Join(d.dir, logtail.FileName(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	d.file = f
	d.day = day
	return nil
}

// Close closes the current file, if any.
func (d *DailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
