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

func TestAssignments_RoundTrip(t *testing.T) {
	labels := []int{1, 2, 2, 1}
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteAssignments(&buf, labels))
	assert.Equal(t, "0 => 1\n1 => 2\n2 => 2\n3 => 1\n", buf.String())

	back, err := graphio.ReadAssignments(&buf)
	require.NoError(t, err)
	assert.Equal(t, labels, back)
}

func TestReadAssignments_Lenient(t *testing.T) {
	in := "2=>3;\r\n\n0 => 1 (part)\n  1 =>2\n"
	labels, err := graphio.ReadAssignments(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, labels)
}

func TestReadAssignments_Gaps(t *testing.T) {
	labels, err := graphio.ReadAssignments(strings.NewReader("3 => 2\n0 => 1\n0 => 4"))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 0, 2}, labels, "missing vertices stay 0, the last line wins")
}

func TestReadAssignments_Errors(t *testing.T) {
	for name, in := range map[string]string{
		"no arrow":    "0 1\n",
		"bad vertex":  "a => 1\n",
		"negative":    "-1 => 1\n",
		"huge vertex": "999999999999 => 1\n",
		"past max":    "16777216 => 1\n",
		"no cluster":  "0 => x\n",
		"second line": "0 => 1\n1 -> 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.ReadAssignments(strings.NewReader(in))
			require.ErrorIs(t, err, graphio.ErrParse)
		})
	}
}
