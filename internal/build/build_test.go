package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/msb/internal/build"
)

func TestString(t *testing.T) {
	version, commit := build.Version, build.Commit
	t.Cleanup(func() { build.Version, build.Commit = version, commit })

	build.Version, build.Commit = "v1.0.0", ""
	assert.Equal(t, "v1.0.0", build.String())

	build.Commit = "abc123"
	assert.Equal(t, "v1.0.0 (abc123)", build.String())
}
