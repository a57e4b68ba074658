package bvh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveLoad_RoundTripsNodeFields(t *testing.T) {
	assert := assert.New(t)

	boxes := randomBoxes(64, 3)
	tree, err := Build(boxes, DefaultBuildParams())
	assert.NoError(err)

	path := filepath.Join(t.TempDir(), "test.bvhc")
	assert.NoError(tree.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	assert.NoError(err)
	assert.Equal(tree.Nodes, loaded.Nodes)
}

func TestLoad_RejectsBadMagic(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "bad.bvhc")
	assert.NoError(os.WriteFile(path, make([]byte, 12), 0o644))

	_, err := LoadFromFile(path)
	assert.ErrorIs(err, ErrBadMagic)
}

func TestLoad_RejectsBadVersion(t *testing.T) {
	assert := assert.New(t)

	boxes := randomBoxes(4, 11)
	tree, err := Build(boxes, DefaultBuildParams())
	assert.NoError(err)

	path := filepath.Join(t.TempDir(), "test.bvhc")
	assert.NoError(tree.SaveToFile(path))

	data, err := os.ReadFile(path)
	assert.NoError(err)
	data[4] = 0xFF
	assert.NoError(os.WriteFile(path, data, 0o644))

	_, err = LoadFromFile(path)
	assert.ErrorIs(err, ErrBadVersion)
}
