// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const resultLines = 4

// Result is the content of a partition result file: the summary line and
// the row layout copied from the input graph.
type Result struct {
	Parts             int
	EdgesCut          int
	Margin            float64
	MaxVerticesPerRow int
	RowPositions      []int
	RowStartIndices   []int
}

// NewResult pairs the partition figures with the layout of g.
func NewResult(g *Graph, parts, edgesCut int, margin float64) *Result {
	return &Result{
		Parts:             parts,
		EdgesCut:          edgesCut,
		Margin:            margin,
		MaxVerticesPerRow: g.MaxVerticesPerRow,
		RowPositions:      g.RowPositions,
		RowStartIndices:   g.RowStartIndices,
	}
}

// WriteResult writes res in the four-line result format. The margin is
// printed with two decimals.
func WriteResult(w io.Writer, res *Result) error {
	if res == nil {
		return ErrNilInput
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(res.Parts))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(res.EdgesCut))
	bw.WriteByte(' ')
	bw.WriteString(strconv.FormatFloat(res.Margin, 'f', 2, 64))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(res.MaxVerticesPerRow))
	bw.WriteByte('\n')
	writeList(bw, res.RowPositions)
	writeList(bw, res.RowStartIndices)

	return bw.Flush()
}

// ReadResult parses a four-line result file. A decimal comma in the margin
// is accepted.
func ReadResult(r io.Reader) (*Result, error) {
	lines, err := readLines(r, resultLines)
	if err != nil {
		return nil, err
	}

	head := strings.Fields(lines[0])
	if len(head) != 3 {
		return nil, lineErrorf(1, "want 3 fields, got %d", len(head))
	}
	res := &Result{}
	if res.Parts, err = parseInt(head[0], 1); err != nil {
		return nil, err
	}
	if res.EdgesCut, err = parseInt(head[1], 1); err != nil {
		return nil, err
	}
	if res.Margin, err = strconv.ParseFloat(strings.Replace(head[2], ",", ".", 1), 64); err != nil {
		return nil, lineErrorf(1, "%q is not a number", head[2])
	}
	if res.MaxVerticesPerRow, err = parseInt(lines[1], 2); err != nil {
		return nil, err
	}
	if res.RowPositions, err = parseList(lines[2], 3); err != nil {
		return nil, err
	}
	if res.RowStartIndices, err = parseList(lines[3], 4); err != nil {
		return nil, err
	}

	return res, nil
}
