/*
File    : mxc/modules/manifest_test.go
Package : modules
*/
package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitManifest_NoBlockReturnsSourceUnchanged(t *testing.T) {
	src := `fn f(): int { return 1; }`
	manifest, body := SplitManifest(src)
	assert.Nil(t, manifest)
	assert.Equal(t, src, body)
}

func TestSplitManifest_ParsesRequiresAndAlias(t *testing.T) {
	src := "#module\nrequires: <cmath>, <numeric>\nalias: mathx\n#end\nfn sq(x: int): int { return x * x; }"
	manifest, body := SplitManifest(src)
	require.NotNil(t, manifest)
	assert.Equal(t, []string{"<cmath>", "<numeric>"}, manifest.Requires)
	assert.Equal(t, "mathx", manifest.Alias)
	assert.Contains(t, body, "fn sq(x: int): int")
	assert.NotContains(t, body, "#module")
}

func TestSplitManifest_RequiresWithoutAlias(t *testing.T) {
	src := "#module\nrequires: <vector>\n#end\nfn f() {}"
	manifest, body := SplitManifest(src)
	require.NotNil(t, manifest)
	assert.Equal(t, []string{"<vector>"}, manifest.Requires)
	assert.Equal(t, "", manifest.Alias)
	assert.Contains(t, body, "fn f() {}")
}

func TestSplitManifest_MalformedBlockFallsBackToRawSource(t *testing.T) {
	src := "#module\nthis is not valid\n#end\nfn f() {}"
	manifest, body := SplitManifest(src)
	assert.Nil(t, manifest)
	assert.Equal(t, src, body)
}
