package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionDefault(t *testing.T) {
	// version is replaced via -ldflags in release builds; the source default
	// must stay "dev" so local builds are recognizable.
	assert.Equal(t, "dev", version)
}
