// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specpart/graphio"
)

func TestWriteResult(t *testing.T) {
	g := &graphio.Graph{MaxVerticesPerRow: 2, RowPositions: []int{0, 1, 0}, RowStartIndices: []int{0, 2, 3}}
	res := graphio.NewResult(g, 3, 7, 133.3333)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteResult(&buf, res))
	assert.Equal(t, "3 7 133.33\n2\n0;1;0\n0;2;3\n", buf.String())

	back, err := graphio.ReadResult(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Parts)
	assert.Equal(t, 7, back.EdgesCut)
	assert.InDelta(t, 133.33, back.Margin, 1e-12)
	assert.Equal(t, g.RowPositions, back.RowPositions)
	assert.Equal(t, g.RowStartIndices, back.RowStartIndices)

	require.ErrorIs(t, graphio.WriteResult(&buf, nil), graphio.ErrNilInput)
}

func TestReadResult_DecimalComma(t *testing.T) {
	res, err := graphio.ReadResult(strings.NewReader("2 1 12,50\n4\n0\n0\n"))
	require.NoError(t, err)
	assert.Equal(t, 12.5, res.Margin)
}

func TestReadResult_Errors(t *testing.T) {
	for name, in := range map[string]string{
		"two fields": "2 1\n4\n0\n0\n",
		"bad margin": "2 1 x\n4\n0\n0\n",
		"bad parts":  "a 1 0.00\n4\n0\n0\n",
		"bad row":    "2 1 0.00\n4\n0;?\n0\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.ReadResult(strings.NewReader(in))
			require.ErrorIs(t, err, graphio.ErrParse)
		})
	}

	_, err := graphio.ReadResult(strings.NewReader("2 1 0.00\n4\n"))
	require.ErrorIs(t, err, graphio.ErrTruncated)
}
