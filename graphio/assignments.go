// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

const arrow = "=>"

// MaxVertex is the largest vertex id ReadAssignments accepts; the label
// slice grows to the largest id seen.
const MaxVertex = 1<<24 - 1

// WriteAssignments writes one "<vertex> => <cluster>" line per vertex;
// labels[i] is the cluster of vertex i.
func WriteAssignments(w io.Writer, labels []int) error {
	bw := bufio.NewWriter(w)
	var buf [20]byte
	for v, c := range labels {
		bw.Write(strconv.AppendInt(buf[:0], int64(v), 10))
		bw.WriteString(" " + arrow + " ")
		bw.Write(strconv.AppendInt(buf[:0], int64(c), 10))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// ReadAssignments parses an assignment file into labels indexed by vertex.
// Blank lines are skipped; trailing non-digits after the cluster id are
// ignored. Vertices never mentioned get label 0; a repeated vertex keeps its
// last cluster. A vertex id above MaxVertex is an ErrParse.
func ReadAssignments(r io.Reader) ([]int, error) {
	br := bufio.NewReader(r)
	var labels []int
	for no := 1; ; no++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if text := strings.TrimSpace(line); text != "" {
			v, c, perr := parseAssignment(text, no)
			if perr != nil {
				return nil, perr
			}
			for len(labels) <= v {
				labels = append(labels, 0)
			}
			labels[v] = c
		}
		if err != nil {
			break
		}
	}

	return labels, nil
}

// parseAssignment splits "<vertex> => <cluster>" on line no.
func parseAssignment(text string, no int) (int, int, error) {
	left, right, ok := strings.Cut(text, arrow)
	if !ok {
		return 0, 0, lineErrorf(no, "missing %q", arrow)
	}
	v, err := parseInt(left, no)
	if err != nil {
		return 0, 0, err
	}
	if v < 0 || v > MaxVertex {
		return 0, 0, lineErrorf(no, "vertex %d outside [0,%d]", v, MaxVertex)
	}
	right = strings.TrimSpace(right)
	end := 0
	for end < len(right) && right[end] >= '0' && right[end] <= '9' {
		end++
	}
	c, err := parseInt(right[:end], no)
	if err != nil {
		return 0, 0, err
	}

	return v, c, nil
}
