package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	info := Info{Version: "v1.2.0", CommitHash: "abc1234", BuildTime: "2026-08-24T00:00:00Z"}
	assert.Equal(t, "cxxbind v1.2.0 (commit abc1234, built 2026-08-24T00:00:00Z)", info.String())
}

func TestShort(t *testing.T) {
	assert.Equal(t, "abc1234", Info{CommitHash: "abc1234def5678"}.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestGetFillsRuntimeFacts(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
