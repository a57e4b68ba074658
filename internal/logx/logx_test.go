package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_InfoWritesTaggedLine(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	l := New(&buf)
	l.SetColors(false)
	l.Info("rendered %d tiles", 4)

	out := buf.String()
	assert.True(strings.Contains(out, "[INFO]"))
	assert.True(strings.Contains(out, "rendered 4 tiles"))
}

func TestLogger_ColorsWrapTag(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	l := New(&buf)
	l.Error("boom")

	out := buf.String()
	assert.True(strings.Contains(out, colorError))
	assert.True(strings.Contains(out, colorDefault))
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	assert := assert.New(t)

	a := Default()
	b := Default()
	assert.Same(a, b)
}

func TestProgress_NonTerminalSinkIsNoopStart(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	p := NewProgress(&buf, "building bvh")
	p.Start()
	p.Stop()
	assert.Equal("", buf.String())
}
