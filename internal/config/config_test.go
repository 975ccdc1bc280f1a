package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
)

func TestLoadMissingConfigIsEmpty(t *testing.T) {
	c, err := loadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Nil(t, c.SpokenLanguage)
	assert.Nil(t, c.ProgrammingLanguage)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := &Config{path: path}
	de := spoken.Code("de")
	rs := programming.Code("rs")
	c.SpokenLanguage = &de
	c.ProgrammingLanguage = &rs
	require.NoError(t, c.Save())

	got, err := loadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, got.SpokenLanguage)
	require.NotNil(t, got.ProgrammingLanguage)
	assert.Equal(t, de, *got.SpokenLanguage)
	assert.Equal(t, rs, *got.ProgrammingLanguage)
}

func TestConfigNullLanguages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("spoken_language: null\nprogramming_language: null\n"), 0o644))
	c, err := loadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, c.SpokenLanguage)
	assert.Nil(t, c.ProgrammingLanguage)
}

func TestConfigRejectsUnknownCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spoken_language: qq\n"), 0o644))
	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qq")
}

func TestStatusRoundTrip(t *testing.T) {
	root := t.TempDir()
	s, err := LoadStatus(root)
	require.NoError(t, err)

	en := spoken.Code("en")
	s.SpokenLanguage = &en
	s.Workshop = "netminer"
	s.Lesson = "intro"
	require.NoError(t, s.Save())

	got, err := LoadStatus(root)
	require.NoError(t, err)
	assert.Equal(t, "netminer", got.Workshop)
	assert.Equal(t, "intro", got.Lesson)
	require.NotNil(t, got.SpokenLanguage)
	assert.Equal(t, en, *got.SpokenLanguage)
	assert.Nil(t, got.ProgrammingLanguage)
}

func TestStatusClearSelection(t *testing.T) {
	root := t.TempDir()
	s, err := LoadStatus(root)
	require.NoError(t, err)
	en := spoken.Code("en")
	s.SpokenLanguage = &en
	s.Workshop = "netminer"
	s.Lesson = "intro"

	s.ClearSelection()
	require.NoError(t, s.Save())

	got, err := LoadStatus(root)
	require.NoError(t, err)
	assert.Empty(t, got.Workshop)
	assert.Empty(t, got.Lesson)
	require.NotNil(t, got.SpokenLanguage, "languages survive a selection clear")
}
