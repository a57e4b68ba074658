package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayforge/pathtracer/bitmap"
)

func TestMemoryPresenter_RetainsLastFrameAndCounts(t *testing.T) {
	assert := assert.New(t)

	frame, err := bitmap.New(2, 2, bitmap.FormatRGBA32F, true, nil)
	assert.NoError(err)

	p := &MemoryPresenter{}
	assert.NoError(p.Present(frame))
	assert.NoError(p.Present(frame))

	assert.Same(frame, p.Last)
	assert.Equal(2, p.Count)
}
