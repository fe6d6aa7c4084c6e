// Package mirror keeps the shared UI source tree duplicated into the
// platform app folders. Mirroring shells out to rsync or robocopy when
// available and falls back to a pure-Go copy-with-delete otherwise.
package mirror

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/spf13/afero"

	"github.com/lockpilot/lockpilot/pkg/logger"
)

// Options controls how a tree is mirrored or diffed.
type Options struct {
	// Exclude lists entry base names skipped on both sides, such as
	// ".git". Excluded entries are never copied and never deleted.
	Exclude []string
	// DryRun logs planned changes without touching the destination.
	DryRun bool
	// PreferTool shells out to rsync (or robocopy on Windows) when the
	// tool is on PATH. Only honored for the real filesystem.
	PreferTool bool
}

func (o *Options) excluded(name string) bool {
	for _, e := range o.Exclude {
		if name == e {
			return true
		}
	}
	return false
}

// test seams
var (
	lookPathFunc   = exec.LookPath
	runCommandFunc = runCommand
)

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Mirror copies src into every dest with delete semantics: after a
// successful run each dest is an exact copy of src, excluded entries
// aside.
func Mirror(fsys afero.Fs, src string, dests []string, opts *Options, l logger.Logger) error {
	if opts == nil {
		opts = &Options{}
	}
	info, err := fsys.Stat(src)
	if err != nil {
		return fmt.Errorf("source %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source %s: not a directory", src)
	}
	for _, dest := range dests {
		if opts.PreferTool && !opts.DryRun && isOsFs(fsys) {
			ok, err := mirrorWithTool(src, dest, opts, l)
			if err != nil {
				return fmt.Errorf("mirror %s: %w", dest, err)
			}
			if ok {
				continue
			}
		}
		if err := mirrorTree(fsys, src, dest, opts, l); err != nil {
			return fmt.Errorf("mirror %s: %w", dest, err)
		}
	}
	return nil
}

func isOsFs(fsys afero.Fs) bool {
	_, ok := fsys.(*afero.OsFs)
	return ok
}

// mirrorWithTool runs the platform mirroring tool. It reports false
// when no tool is installed so the caller can fall back.
func mirrorWithTool(src, dest string, opts *Options, l logger.Logger) (bool, error) {
	if runtime.GOOS == "windows" {
		if _, err := lookPathFunc("robocopy"); err != nil {
			return false, nil
		}
		args := []string{src, dest, "/MIR", "/NFL", "/NDL", "/NJH", "/NJS"}
		for _, e := range opts.Exclude {
			args = append(args, "/XD", e, "/XF", e)
		}
		l.Info("mirroring %s -> %s via robocopy", src, dest)
		err := runCommandFunc("robocopy", args...)
		// robocopy exit codes below 8 indicate success
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() < 8 {
			err = nil
		}
		return true, err
	}
	if _, err := lookPathFunc("rsync"); err != nil {
		return false, nil
	}
	args := []string{"-a", "--delete"}
	for _, e := range opts.Exclude {
		args = append(args, "--exclude", e)
	}
	args = append(args, src+string(filepath.Separator), dest+string(filepath.Separator))
	l.Info("mirroring %s -> %s via rsync", src, dest)
	return true, runCommandFunc("rsync", args...)
}

// mirrorTree is the pure-Go fallback: copy new and changed entries,
// then delete everything in dest that src does not have.
func mirrorTree(fsys afero.Fs, src, dest string, opts *Options, l logger.Logger) error {
	if opts.DryRun {
		l.Info("dry run: mirroring %s -> %s", src, dest)
	} else {
		l.Info("mirroring %s -> %s", src, dest)
	}
	srcEntries, err := collect(fsys, src, opts)
	if err != nil {
		return err
	}
	if !opts.DryRun {
		if err := fsys.MkdirAll(dest, 0755); err != nil {
			return err
		}
	}
	for _, rel := range sortedKeys(srcEntries) {
		srcPath := filepath.Join(src, rel)
		destPath := filepath.Join(dest, rel)
		if srcEntries[rel].IsDir() {
			if opts.DryRun {
				continue
			}
			if err := fsys.MkdirAll(destPath, 0755); err != nil {
				return err
			}
			continue
		}
		same, err := filesEqual(fsys, srcPath, destPath)
		if err != nil {
			return err
		}
		if same {
			continue
		}
		if opts.DryRun {
			l.Info("would copy %s", rel)
			continue
		}
		if err := copyFile(fsys, srcPath, destPath); err != nil {
			return err
		}
	}
	destEntries, err := collect(fsys, dest, opts)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	// delete deepest first so directories empty out before removal
	rels := sortedKeys(destEntries)
	for i := len(rels) - 1; i >= 0; i-- {
		rel := rels[i]
		if _, ok := srcEntries[rel]; ok {
			continue
		}
		if opts.DryRun {
			l.Info("would delete %s", rel)
			continue
		}
		if err := fsys.RemoveAll(filepath.Join(dest, rel)); err != nil {
			return err
		}
	}
	return nil
}

// collect walks root and returns its entries keyed by slash-normalized
// relative path, honoring exclusions.
func collect(fsys afero.Fs, root string, opts *Options) (map[string]os.FileInfo, error) {
	entries := make(map[string]os.FileInfo)
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if opts.excluded(info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries[filepath.ToSlash(rel)] = info
		return nil
	})
	return entries, err
}

func sortedKeys(m map[string]os.FileInfo) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func filesEqual(fsys afero.Fs, a, b string) (bool, error) {
	ai, err := fsys.Stat(a)
	if err != nil {
		return false, err
	}
	bi, err := fsys.Stat(b)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if ai.Size() != bi.Size() {
		return false, nil
	}
	ab, err := afero.ReadFile(fsys, a)
	if err != nil {
		return false, err
	}
	bb, err := afero.ReadFile(fsys, b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ab, bb), nil
}

func copyFile(fsys afero.Fs, src, dest string) error {
	if err := fsys.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	b, err := afero.ReadFile(fsys, src)
	if err != nil {
		return err
	}
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	return afero.WriteFile(fsys, dest, b, info.Mode().Perm())
}
