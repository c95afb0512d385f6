package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-10-01\nBuild commit: N/A\n", info.String())
}

func TestConfigRequest_CacheKeyIsCaseInsensitive(t *testing.T) {
	a := ConfigRequest{AppName: "MyApp1", ModuleName: "Default-Setting", HostName: "HOST"}
	b := ConfigRequest{AppName: "myapp1", ModuleName: "default-setting", HostName: "host"}
	c := ConfigRequest{AppName: "myapp1", ModuleName: "default-setting"}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}
