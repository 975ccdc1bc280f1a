package workshop

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
)

// Issue is one problem found while validating a workshop tree. Path is
// relative to the workshops root.
type Issue struct {
	Path string
	Msg  string
}

func (i Issue) String() string { return i.Path + ": " + i.Msg }

// Schema definitions for the three YAML record types. Kept as Go values
// so they compile together with the structs they mirror.
var schemaDefs = map[string]map[string]any{
	defaultsFile: {
		"type":     "object",
		"required": []any{"spoken_language", "programming_language"},
		"properties": map[string]any{
			"spoken_language":      map[string]any{"type": "string", "minLength": 2},
			"programming_language": map[string]any{"type": "string", "minLength": 2},
		},
		"additionalProperties": false,
	},
	metadataFile: {
		"type":     "object",
		"required": []any{"title"},
		"properties": map[string]any{
			"title":      map[string]any{"type": "string", "minLength": 1},
			"authors":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"copyright":  map[string]any{"type": "string"},
			"license":    map[string]any{"type": "string"},
			"homepage":   map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
		},
		"additionalProperties": false,
	},
	lessonMetaFile: {
		"type":     "object",
		"required": []any{"title"},
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string"},
			"status": map[string]any{
				"enum": []any{string(StatusNotStarted), string(StatusInProgress), string(StatusCompleted)},
			},
		},
		"additionalProperties": false,
	},
}

var (
	schemaOnce sync.Once
	schemas    map[string]*jsonschema.Schema
	schemaErr  error
)

// compiledSchemas compiles the schema definitions once per process.
func compiledSchemas() (map[string]*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		out := make(map[string]*jsonschema.Schema, len(schemaDefs))
		for name, def := range schemaDefs {
			c := jsonschema.NewCompiler()
			url := fmt.Sprintf("schema://%s.json", name)
			// The compiler wants a JSON-decoded value, so round-trip
			// the Go literal through encoding/json.
			b, err := json.Marshal(def)
			if err != nil {
				schemaErr = fmt.Errorf("marshal schema %s: %w", name, err)
				return
			}
			var parsed any
			if err := json.Unmarshal(b, &parsed); err != nil {
				schemaErr = fmt.Errorf("parse schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(url, parsed); err != nil {
				schemaErr = fmt.Errorf("add schema %s: %w", name, err)
				return
			}
			out[name], err = c.Compile(url)
			if err != nil {
				schemaErr = fmt.Errorf("compile schema %s: %w", name, err)
				return
			}
		}
		schemas = out
	})
	return schemas, schemaErr
}

// validateYAMLFile checks one YAML file against the schema registered
// for its base name. A missing file is reported by the caller, not
// here.
func validateYAMLFile(path string, schema *jsonschema.Schema) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	// Normalize YAML-decoded values into JSON-decoded shape.
	jb, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(jb, &parsed); err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	return schema.Validate(parsed)
}

// ValidateTree checks one workshop directory against the layout the
// loader expects: required files present, YAML records matching their
// schemas, and language directories that parse as known codes. It
// reports problems instead of stopping at the first, so an author sees
// the whole picture in one run.
func ValidateTree(root, name string) ([]Issue, error) {
	dir := filepath.Join(root, name)
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return nil, &NotFoundError{Workshop: name}
	}
	compiled, err := compiledSchemas()
	if err != nil {
		return nil, err
	}

	var issues []Issue
	report := func(rel, msg string) {
		issues = append(issues, Issue{Path: filepath.Join(name, rel), Msg: msg})
	}
	checkYAML := func(rel string) bool {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err != nil {
			report(rel, "missing")
			return false
		}
		if err := validateYAMLFile(path, compiled[filepath.Base(rel)]); err != nil {
			report(rel, err.Error())
			return false
		}
		return true
	}

	defaultsOK := checkYAML(defaultsFile)
	if _, err := os.Stat(filepath.Join(dir, licenseFile)); err != nil {
		report(licenseFile, "missing")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	spokenSeen := map[spoken.Code]bool{}
	progSeen := map[programming.Code]bool{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		code, ok := spoken.Parse(e.Name())
		if !ok {
			report(e.Name(), "not a known spoken language code, directory will be ignored")
			continue
		}
		spokenSeen[code] = true
		issues = append(issues, validateSpokenDir(dir, name, e.Name(), compiled, progSeen)...)
	}
	if len(spokenSeen) == 0 {
		report(".", "no spoken language directories")
	}

	if defaultsOK {
		defaults, err := readYAMLFile[Defaults](filepath.Join(dir, defaultsFile))
		if err == nil {
			if !spokenSeen[defaults.SpokenLanguage] {
				report(defaultsFile, fmt.Sprintf("default spoken language %q has no directory", defaults.SpokenLanguage))
			}
			if !progSeen[defaults.ProgrammingLanguage] {
				report(defaultsFile, fmt.Sprintf("default programming language %q has no directory", defaults.ProgrammingLanguage))
			}
		}
	}
	return issues, nil
}

func validateSpokenDir(wsDir, wsName, spokenName string, compiled map[string]*jsonschema.Schema, progSeen map[programming.Code]bool) []Issue {
	var issues []Issue
	report := func(rel, msg string) {
		issues = append(issues, Issue{Path: filepath.Join(wsName, spokenName, rel), Msg: msg})
	}
	sdir := filepath.Join(wsDir, spokenName)

	if _, err := os.Stat(filepath.Join(sdir, descriptionFile)); err != nil {
		report(descriptionFile, "missing")
	}
	metaPath := filepath.Join(sdir, metadataFile)
	if _, err := os.Stat(metaPath); err != nil {
		report(metadataFile, "missing")
	} else if err := validateYAMLFile(metaPath, compiled[metadataFile]); err != nil {
		report(metadataFile, err.Error())
	}

	entries, err := os.ReadDir(sdir)
	if err != nil {
		report(".", err.Error())
		return issues
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pcode, ok := programming.Parse(e.Name())
		if !ok {
			report(e.Name(), "not a known programming language code, directory will be ignored")
			continue
		}
		progSeen[pcode] = true

		pdir := filepath.Join(sdir, e.Name())
		if _, err := os.Stat(filepath.Join(pdir, setupFile)); err != nil {
			report(filepath.Join(e.Name(), setupFile), "missing")
		}
		if _, err := os.Stat(filepath.Join(pdir, depsScript)); err != nil {
			report(filepath.Join(e.Name(), depsScript), "missing, dependency checks will fail")
		}

		lessonEntries, err := os.ReadDir(pdir)
		if err != nil {
			report(e.Name(), err.Error())
			continue
		}
		for _, le := range lessonEntries {
			if !le.IsDir() {
				continue
			}
			lrel := filepath.Join(e.Name(), le.Name())
			ldir := filepath.Join(pdir, le.Name())
			if _, err := os.Stat(filepath.Join(ldir, lessonTextFile)); err != nil {
				report(filepath.Join(lrel, lessonTextFile), "missing")
			}
			lmPath := filepath.Join(ldir, lessonMetaFile)
			if _, err := os.Stat(lmPath); err != nil {
				report(filepath.Join(lrel, lessonMetaFile), "missing")
			} else if err := validateYAMLFile(lmPath, compiled[lessonMetaFile]); err != nil {
				report(filepath.Join(lrel, lessonMetaFile), err.Error())
			}
			if _, err := os.Stat(filepath.Join(ldir, checkScript)); err != nil {
				report(filepath.Join(lrel, checkScript), "missing, solution checks will fail")
			}
		}
	}
	return issues
}
