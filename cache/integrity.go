// Package cache implements the on-disk cache layer (spec.md C10): every
// rebuildable artefact (PLL labels, weighted-PLL labels, disjoint-sets,
// weighted-graph adjacency) serializes to a plain-text record with a
// trailing KT128 checksum line, and rebuilds itself from that record,
// checking expected sizes against the live graph. A mismatch (size or
// checksum) is a cache miss — it degrades to a rebuild, never an error
// surfaced to the caller as fatal.
package cache

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/codahale/thyrse/hazmat/kt128"
	"github.com/katalvlaran/reachcompress/internal/errs"
)

// checksumPrefix marks the trailer line appended to every cache artefact.
const checksumPrefix = "# checksum "

// checksum returns the hex-encoded KT128 digest of body.
func checksum(body []byte) string {
	h := kt128.New()
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// writeWithTrailer writes body verbatim, then a trailing checksum line.
func writeWithTrailer(w io.Writer, body []byte) error {
	if _, err := w.Write(body); err != nil {
		return err
	}
	if len(body) > 0 && body[len(body)-1] != '\n' {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s%s\n", checksumPrefix, checksum(body))
	return err
}

// readWithTrailer reads every line from r, verifies the last line is a
// checksum trailer matching the preceding body, and returns the body lines
// (without the trailer). Returns ErrCacheMismatch on any verification
// failure or malformed trailer.
func readWithTrailer(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.ErrCacheMismatch
	}

	trailer := lines[len(lines)-1]
	if !strings.HasPrefix(trailer, checksumPrefix) {
		return nil, errs.ErrCacheMismatch
	}
	want := strings.TrimPrefix(trailer, checksumPrefix)

	body := lines[:len(lines)-1]
	var buf bytes.Buffer
	for _, l := range body {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	if checksum(buf.Bytes()) != want {
		return nil, errs.ErrCacheMismatch
	}
	return body, nil
}
