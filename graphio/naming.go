// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// numbered matches "wynik (N).csrrg" and "wynik (N).bin".
var numbered = regexp.MustCompile(`^wynik \((\d+)\)\.(csrrg|bin)$`)

// Names is one set of files belonging together. Index 0 is the unnumbered
// set (wynik.csrrg, graf.csrrg, przypisania.txt).
type Names struct {
	Index       int
	Result      string // wynik[ (N)].csrrg
	Binary      string // wynik[ (N)].bin
	Graph       string // graf[N].csrrg
	Assignments string // przypisania[ (N)].txt
}

// ResultNames returns the file names of set index. Negative indices are
// treated as 0.
func ResultNames(index int) Names {
	if index <= 0 {
		return Names{
			Result:      "wynik.csrrg",
			Binary:      "wynik.bin",
			Graph:       "graf.csrrg",
			Assignments: "przypisania.txt",
		}
	}
	n := strconv.Itoa(index)

	return Names{
		Index:       index,
		Result:      "wynik (" + n + ").csrrg",
		Binary:      "wynik (" + n + ").bin",
		Graph:       "graf" + n + ".csrrg",
		Assignments: "przypisania (" + n + ").txt",
	}
}

// Pair resolves the graph and assignment files belonging to the result file
// at path. Returned paths share the directory of path.
//
// Errors: ErrUnrecognizedFile when the base name is outside the convention.
func Pair(path string) (Names, error) {
	dir, base := filepath.Split(path)
	var names Names
	switch base {
	case "wynik.csrrg", "wynik.bin":
		names = ResultNames(0)
	default:
		m := numbered.FindStringSubmatch(base)
		if m == nil {
			return Names{}, fmt.Errorf("%w: %s", ErrUnrecognizedFile, base)
		}
		index, err := strconv.Atoi(m[1])
		if err != nil || index == 0 {
			return Names{}, fmt.Errorf("%w: %s", ErrUnrecognizedFile, base)
		}
		names = ResultNames(index)
	}

	return names.In(dir), nil
}

// In returns n with every name placed in dir.
func (n Names) In(dir string) Names {
	n.Result = filepath.Join(dir, n.Result)
	n.Binary = filepath.Join(dir, n.Binary)
	n.Graph = filepath.Join(dir, n.Graph)
	n.Assignments = filepath.Join(dir, n.Assignments)

	return n
}

// graphName matches "graf.csrrg" and "grafN.csrrg".
var graphName = regexp.MustCompile(`^graf(\d*)\.csrrg$`)

// GraphIndex returns the set index encoded in a graph file name
// (graf.csrrg → 0, graf7.csrrg → 7). ok is false for any other name.
func GraphIndex(path string) (index int, ok bool) {
	m := graphName.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, false
	}
	if m[1] == "" {
		return 0, true
	}
	index, err := strconv.Atoi(m[1])
	if err != nil || index == 0 {
		return 0, false
	}

	return index, true
}
