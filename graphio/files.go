// SPDX-License-Identifier: MIT

package graphio

import (
	"io"
	"os"
)

// LoadGraph reads the graph file at path. Errors carry the file name.
func LoadGraph(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err // *PathError already names the file
	}
	defer f.Close()

	g, err := ReadGraph(f)
	if err != nil {
		return nil, fileErrorf(path, err)
	}

	return g, nil
}

// LoadAssignments reads the assignment file at path.
func LoadAssignments(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, err := ReadAssignments(f)
	if err != nil {
		return nil, fileErrorf(path, err)
	}

	return labels, nil
}

// LoadResult reads the result file at path.
func LoadResult(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := ReadResult(f)
	if err != nil {
		return nil, fileErrorf(path, err)
	}

	return res, nil
}

// SaveResult writes the result and assignment files of set index into dir
// and returns their names.
func SaveResult(dir string, index int, res *Result, labels []int) (Names, error) {
	names := ResultNames(index).In(dir)

	if err := writeFile(names.Result, func(w io.Writer) error { return WriteResult(w, res) }); err != nil {
		return Names{}, err
	}
	if err := writeFile(names.Assignments, func(w io.Writer) error { return WriteAssignments(w, labels) }); err != nil {
		return Names{}, err
	}

	return names, nil
}

// writeFile creates path, runs fn on it and closes it, reporting the first
// failure with the file name.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileErrorf(path, cerr)
		}
	}()
	if werr := fn(f); werr != nil {
		return fileErrorf(path, werr)
	}

	return nil
}
