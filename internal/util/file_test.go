package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadIntFromFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "value")
	err := os.WriteFile(path, []byte("42\n"), 0644)
	assert.NoError(t, err)

	// WHEN
	value, err := ReadIntFromFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestReadIntFromFileEmpty(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "empty")
	err := os.WriteFile(path, []byte(""), 0644)
	assert.NoError(t, err)

	// WHEN
	_, err = ReadIntFromFile(path)

	// THEN
	assert.Error(t, err)
}

func TestReadIntFromFileMissing(t *testing.T) {
	// WHEN
	_, err := ReadIntFromFile(filepath.Join(t.TempDir(), "does-not-exist"))

	// THEN
	assert.Error(t, err)
}

func TestWriteIntToFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "value")

	// WHEN
	err := WriteIntToFile(1, path)

	// THEN
	assert.NoError(t, err)
	value, err := ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestWriteStringToFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "direction")

	// WHEN
	err := WriteStringToFile("out", path)

	// THEN
	assert.NoError(t, err)
	value, err := ReadStringFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "out", value)
}
