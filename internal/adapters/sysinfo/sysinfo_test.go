package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectReturnsPlausibleValues(t *testing.T) {
	info := Detect()
	assert.Greater(t, info.LogicalCPUs, 0)
	assert.NotEmpty(t, info.GOOS)
	assert.NotEmpty(t, info.GOARCH)
	assert.NotEmpty(t, info.GoVersion)
}
