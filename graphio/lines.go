// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// readLines returns the first want lines of r with trailing CR/LF removed.
// Lines are read without a length cap; adjacency lines of large graphs run
// to megabytes.
func readLines(r io.Reader, want int) ([]string, error) {
	br := bufio.NewReader(r)
	lines := make([]string, 0, want)
	for len(lines) < want {
		line, err := br.ReadString('\n')
		if len(line) > 0 || err == nil {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if len(lines) < want {
		return nil, ErrTruncated
	}

	return lines, nil
}

// parseInt parses one whitespace-trimmed integer from line no.
func parseInt(s string, no int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, lineErrorf(no, "%q is not an integer", strings.TrimSpace(s))
	}

	return v, nil
}

// parseList parses a ';'-separated integer list; empty fields are skipped.
func parseList(s string, no int) ([]int, error) {
	fields := strings.Split(s, ";")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, lineErrorf(no, "%q is not an integer", f)
		}
		out = append(out, v)
	}

	return out, nil
}

// writeList writes xs ';'-separated followed by a newline.
func writeList(w *bufio.Writer, xs []int) {
	var buf [20]byte
	for i, x := range xs {
		if i > 0 {
			w.WriteByte(';')
		}
		w.Write(strconv.AppendInt(buf[:0], int64(x), 10))
	}
	w.WriteByte('\n')
}
