package mirror

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// DiffKind classifies one drift finding.
type DiffKind string

const (
	// DiffMissing means the entry exists in the source but not the target.
	DiffMissing DiffKind = "missing"
	// DiffExtra means the entry exists in the target but not the source.
	DiffExtra DiffKind = "extra"
	// DiffModified means file content differs between source and target.
	DiffModified DiffKind = "modified"
)

// Diff is one divergence between the shared source and a target tree.
type Diff struct {
	Path string
	Kind DiffKind
}

func (d Diff) String() string {
	return fmt.Sprintf("%-8s %s", d.Kind, d.Path)
}

// Drift recursively compares src against dest and returns every
// divergence sorted by path. An empty result means the target is an
// exact mirror.
func Drift(fsys afero.Fs, src, dest string, opts *Options) ([]Diff, error) {
	if opts == nil {
		opts = &Options{}
	}
	srcEntries, err := collect(fsys, src, opts)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src, err)
	}
	destEntries, err := collect(fsys, dest, opts)
	if err != nil {
		return nil, fmt.Errorf("target %s: %w", dest, err)
	}
	var diffs []Diff
	for rel, info := range srcEntries {
		other, ok := destEntries[rel]
		if !ok {
			diffs = append(diffs, Diff{Path: rel, Kind: DiffMissing})
			continue
		}
		if info.IsDir() || other.IsDir() {
			if info.IsDir() != other.IsDir() {
				diffs = append(diffs, Diff{Path: rel, Kind: DiffModified})
			}
			continue
		}
		same, err := filesEqual(fsys, filepath.Join(src, rel), filepath.Join(dest, rel))
		if err != nil {
			return nil, err
		}
		if !same {
			diffs = append(diffs, Diff{Path: rel, Kind: DiffModified})
		}
	}
	for rel := range destEntries {
		if _, ok := srcEntries[rel]; !ok {
			diffs = append(diffs, Diff{Path: rel, Kind: DiffExtra})
		}
	}
	sort.Slice(diffs, func(i, j int) bool {
		if diffs[i].Path != diffs[j].Path {
			return diffs[i].Path < diffs[j].Path
		}
		return diffs[i].Kind < diffs[j].Kind
	})
	return diffs, nil
}
