package workshop

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
	"github.com/abhisek/dojo/internal/lazy"
)

// Load walks the workshop directory root/name and builds its Store.
// Discovery registers unloaded slots without reading any content; the
// only eager work is parsing defaults.yaml and checking that the
// workshop directory and LICENSE exist. Directory entries that do not
// parse as language codes are skipped, never errors.
//
// The spoken languages visible to every aspect of the store are the
// ones found by this scan: a spoken directory missing on disk hides its
// setup and lesson subtrees too.
func Load(root, name string) (*Store, error) {
	path := filepath.Join(root, name)
	if fi, err := os.Stat(path); err != nil || !fi.IsDir() {
		return nil, &NotFoundError{Workshop: name}
	}

	defaults, err := readYAMLFile[Defaults](filepath.Join(path, defaultsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DefaultsNotFoundError{Workshop: name}
		}
		return nil, err
	}

	st := &Store{
		Name:         name,
		Path:         path,
		Defaults:     defaults,
		descriptions: map[spoken.Code]*lazy.Slot[string]{},
		metadata:     map[spoken.Code]*lazy.Slot[Meta]{},
		setup:        map[spoken.Code]map[programming.Code]*lazy.Slot[string]{},
		lessons:      map[spoken.Code]map[programming.Code][]*lazy.Slot[*Lesson]{},
		languages:    map[spoken.Code][]programming.Code{},
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read workshop dir: %w", err)
	}
	type spokenDir struct {
		code spoken.Code
		path string
	}
	var spokenDirs []spokenDir
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		code, ok := spoken.Parse(e.Name())
		if !ok {
			continue
		}
		spokenDirs = append(spokenDirs, spokenDir{code, filepath.Join(path, e.Name())})
	}
	slices.SortFunc(spokenDirs, func(a, b spokenDir) int {
		return cmp.Compare(a.code, b.code)
	})

	for _, sd := range spokenDirs {
		st.descriptions[sd.code] = lazy.New(filepath.Join(sd.path, descriptionFile), readTextFile)
		st.metadata[sd.code] = lazy.New(filepath.Join(sd.path, metadataFile), readYAMLFile[Meta])
		st.setup[sd.code] = map[programming.Code]*lazy.Slot[string]{}
		st.lessons[sd.code] = map[programming.Code][]*lazy.Slot[*Lesson]{}

		subEntries, err := os.ReadDir(sd.path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", sd.path, err)
		}
		for _, pe := range subEntries {
			if !pe.IsDir() {
				continue
			}
			pcode, ok := programming.Parse(pe.Name())
			if !ok {
				continue
			}
			pdir := filepath.Join(sd.path, pe.Name())
			st.setup[sd.code][pcode] = lazy.New(filepath.Join(pdir, setupFile), readTextFile)

			lessonEntries, err := os.ReadDir(pdir)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", pdir, err)
			}
			for _, le := range lessonEntries {
				if !le.IsDir() {
					continue
				}
				slot := lazy.New(filepath.Join(pdir, le.Name()), LoadLesson)
				st.lessons[sd.code][pcode] = append(st.lessons[sd.code][pcode], slot)
			}
		}
	}

	licensePath := filepath.Join(path, licenseFile)
	if _, err := os.Stat(licensePath); err != nil {
		return nil, &LicenseNotFoundError{Workshop: name}
	}
	st.license = lazy.New(licensePath, readTextFile)

	for code, inner := range st.setup {
		st.languages[code] = slices.Sorted(maps.Keys(inner))
	}
	return st, nil
}
