package workshop

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/abhisek/dojo/internal/appdir"
	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
)

// DirName is the directory workshops are installed into.
const DirName = ".workshops"

// FindRoot walks up from dir looking for the nearest .workshops
// directory. ok is false when none exists on the path to the
// filesystem root.
func FindRoot(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, DirName)
		if fi, err := os.Stat(candidate); err == nil && fi.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultRoot resolves the workshops root: the nearest .workshops
// directory up from the working directory, else one under the app data
// directory.
func DefaultRoot() (string, error) {
	if wd, err := os.Getwd(); err == nil {
		if root, ok := FindRoot(wd); ok {
			return root, nil
		}
	}
	data, err := appdir.Data()
	if err != nil {
		return "", err
	}
	root := filepath.Join(data, DirName)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", err
	}
	return root, nil
}

// Init creates a .workshops directory under dir and, when src is
// non-empty, copies the workshop tree at src into it under its base
// name. It returns the root it created.
func Init(dir, src string) (string, error) {
	root := filepath.Join(dir, DirName)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", err
	}
	if src != "" {
		name := filepath.Base(filepath.Clean(src))
		dst := filepath.Join(root, name)
		if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
			return "", fmt.Errorf("copy workshop %s: %w", src, err)
		}
	}
	return root, nil
}

// LoadAll builds a Store for every workshop directory under root.
// A workshop that fails to load is skipped with a log line so one
// broken install does not hide the rest.
func LoadAll(root string) ([]*Store, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read workshops root: %w", err)
	}
	var stores []*Store
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		st, err := Load(root, e.Name())
		if err != nil {
			log.Warn("skipping workshop", "name", e.Name(), "err", err)
			continue
		}
		stores = append(stores, st)
	}
	return stores, nil
}

// LoadAllFiltered builds every loadable Store under root and keeps the
// ones matching the language selection.
func LoadAllFiltered(root string, spk *spoken.Code, prog *programming.Code) ([]*Store, error) {
	stores, err := LoadAll(root)
	if err != nil {
		return nil, err
	}
	var out []*Store
	for _, st := range stores {
		if st.IsSelected(spk, prog) {
			out = append(out, st)
		}
	}
	return out, nil
}

// AllSpokenLanguages returns the sorted union of spoken languages
// across the given stores.
func AllSpokenLanguages(stores []*Store) []spoken.Code {
	set := map[spoken.Code]struct{}{}
	for _, st := range stores {
		for code := range st.languages {
			set[code] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// AllProgrammingLanguages returns the sorted union of programming
// languages across the given stores.
func AllProgrammingLanguages(stores []*Store) []programming.Code {
	set := map[programming.Code]struct{}{}
	for _, st := range stores {
		for _, progs := range st.languages {
			for _, p := range progs {
				set[p] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// AllLanguages unites the per-spoken programming sets of every store.
func AllLanguages(stores []*Store) map[spoken.Code][]programming.Code {
	set := map[spoken.Code]map[programming.Code]struct{}{}
	for _, st := range stores {
		for code, progs := range st.languages {
			if set[code] == nil {
				set[code] = map[programming.Code]struct{}{}
			}
			for _, p := range progs {
				set[code][p] = struct{}{}
			}
		}
	}
	out := make(map[spoken.Code][]programming.Code, len(set))
	for code, progs := range set {
		out[code] = slices.Sorted(maps.Keys(progs))
	}
	return out
}
