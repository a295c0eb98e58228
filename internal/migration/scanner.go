package migration

import (
	"errors"
	"os"
	"sort"
	"strconv"
	"strings"
)

var errNotNumeric = errors.New("leading segment is not a non-negative integer")

// ListStems returns the stems of every up file in dirPath, sorted ascending.
func ListStems(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, &DirectoryAccessError{Dir: dirPath, Err: err}
	}

	stems := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, UpSuffix) {
			continue
		}
		stems = append(stems, strings.TrimSuffix(name, UpSuffix))
	}

	sort.Strings(stems)
	return stems, nil
}

// ParseIndex reads the index from the part of stem before its first underscore.
func ParseIndex(stem string) (int, error) {
	segment, _, _ := strings.Cut(stem, "_")
	if segment == "" {
		return 0, &MalformedStemError{Stem: stem, Err: errNotNumeric}
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, &MalformedStemError{Stem: stem, Err: errNotNumeric}
		}
	}

	index, err := strconv.Atoi(segment)
	if err != nil {
		return 0, &MalformedStemError{Stem: stem, Err: err}
	}
	return index, nil
}

// NextIndex returns one more than the largest index among stems, or 1 when
// there are none. Comparison is numeric, so stems wider than IndexWidth are
// ordered correctly.
func NextIndex(stems []string) (int, error) {
	maxIndex := 0
	for _, stem := range stems {
		index, err := ParseIndex(stem)
		if err != nil {
			return 0, err
		}
		if index > maxIndex {
			maxIndex = index
		}
	}
	return maxIndex + 1, nil
}

func GetNextIndex(dirPath string) (int, error) {
	stems, err := ListStems(dirPath)
	if err != nil {
		return 0, err
	}
	return NextIndex(stems)
}
