package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "1.2.0 (commit abc123, built N/A)", info.String())
	assert.Equal(t, "N/A (commit N/A, built N/A)", AppBuildInfo{}.String())
}
