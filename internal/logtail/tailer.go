// Package logtail reads the tail of the gateway's daily log file.
//
// The gateway writes one plain-text log file per calendar day, named
// logs_gateway_app.log.<YYYY-MM-DD> under a logs/ subdirectory. Each
// call here is stateless: the target path is recomputed from the clock,
// the file is scanned once forward, and only the last maxLines lines
// are retained in a ring buffer.
package logtail

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Sentinel is returned when no log file exists for today's date. A
// missing file is a normal condition (nothing logged yet today), never
// an error.
const Sentinel = "No logs found for today."

const (
	logsDirName = "logs"
	filePrefix  = "logs_gateway_app.log."
	dateLayout  = "2006-01-02"
)

// Result holds the tail of today's log file.
type Result struct {
	Text      string // last lines joined by "\n", or Sentinel, or ""
	Lines     int    // number of lines included in Text
	Malformed int    // lines that contained invalid UTF-8 (bytes replaced, line kept)
}

// FileName returns the log file name for the given day.
func FileName(day time.Time) string {
	return filePrefix + day.Format(dateLayout)
}

// FilePath returns the log file path for the given day under baseDir.
func FilePath(baseDir string, day time.Time) string {
	return filepath.Join(baseDir, logsDirName, FileName(day))
}

// Tail returns the last maxLines lines of today's log file under
// baseDir, in original order. Today is taken from the local clock.
func Tail(baseDir string, maxLines int) (Result, error) {
	return TailAt(baseDir, maxLines, time.Now())
}

// TailAt is Tail with an injected clock.
//
// Lines with invalid UTF-8 are kept with the offending bytes replaced
// by U+FFFD and counted in Result.Malformed, so nothing vanishes from
// the output without trace.
func TailAt(baseDir string, maxLines int, now time.Time) (Result, error) {
	path := FilePath(baseDir, now)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Text: Sentinel}, nil
		}
		return Result{}, fmt.Errorf("open log file %s: %w", path, err)
	}
	defer f.Close()

	if maxLines <= 0 {
		return Result{}, nil
	}

	var (
		ring      []string
		total     int
		malformed int
	)

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			if !utf8.ValidString(line) {
				line = strings.ToValidUTF8(line, "�")
				malformed++
			}
			if len(ring) < maxLines {
				ring = append(ring, line)
			} else {
				ring[total%maxLines] = line
			}
			total++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read log file %s: %w", path, err)
		}
	}

	n := total
	if n > maxLines {
		n = maxLines
	}
	lines := make([]string, 0, n)
	for i := total - n; i < total; i++ {
		lines = append(lines, ring[i%maxLines])
	}

	return Result{
		Text:      strings.Join(lines, "\n"),
		Lines:     n,
		Malformed: malformed,
	}, nil
}
