package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()
	assert.Contains(t, info, "Perfume dev")
	assert.Contains(t, info, runtime.Version())
}

func TestShort(t *testing.T) {
	assert.Equal(t, "dev", Short())
}

func TestMap(t *testing.T) {
	m := Map()
	for _, key := range []string{"version", "git_commit", "build_date", "go_version", "platform"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "dev", m["version"])
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, m["platform"])
	assert.NotEmpty(t, m["git_commit"])
}
