/*
File    : mxc/modules/registry_test.go
Package : modules
*/
package modules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	files map[string]string
}

func (f *fakeReader) ReadModule(path string) (string, error) {
	src, ok := f.files[path]
	if !ok {
		return "", fmt.Errorf("no such file %q", path)
	}
	return src, nil
}

func fakeTranslate(source string) ([]string, string, error) {
	return []string{"<vector>"}, "// translated: " + source, nil
}

func TestRegistry_ResolveStdlibKnownModule(t *testing.T) {
	r := NewRegistry(nil, nil)
	res, err := r.ResolveStdlib("iostream")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Contains(t, res.Headers, "<iostream>")
}

func TestRegistry_ResolveStdlibUnknownModule(t *testing.T) {
	r := NewRegistry(nil, nil)
	_, err := r.ResolveStdlib("not_a_real_module")
	require.Error(t, err)
}

func TestRegistry_ResolveStdlibDuplicateIsNoOp(t *testing.T) {
	r := NewRegistry(nil, nil)
	first, err := r.ResolveStdlib("math")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := r.ResolveStdlib("math")
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestRegistry_ResolvePathWithoutManifest(t *testing.T) {
	reader := &fakeReader{files: map[string]string{
		"util/strings.mx": `fn upper(s: string): string { return s; }`,
	}}
	r := NewRegistry(reader, fakeTranslate)

	res, err := r.ResolvePath("util/strings.mx")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "util/strings.mx", res.Namespace)
	assert.Contains(t, res.Headers, "<vector>")
}

func TestRegistry_ResolvePathWithManifestHeaders(t *testing.T) {
	reader := &fakeReader{files: map[string]string{
		"mathx.mx": "#module\nrequires: <cmath>, <numeric>\nalias: mathx\n#end\nfn sq(x: int): int { return x * x; }",
	}}
	r := NewRegistry(reader, fakeTranslate)

	res, err := r.ResolvePath("mathx.mx")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Contains(t, res.Headers, "<cmath>")
	assert.Contains(t, res.Headers, "<numeric>")
	assert.Contains(t, res.Headers, "<vector>")
}

func TestRegistry_ResolvePathDuplicateIsNoOp(t *testing.T) {
	reader := &fakeReader{files: map[string]string{
		"a.mx": `fn f() {}`,
	}}
	r := NewRegistry(reader, fakeTranslate)

	first, err := r.ResolvePath("a.mx")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := r.ResolvePath("a.mx")
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestRegistry_ResolvePathMissingReader(t *testing.T) {
	r := NewRegistry(nil, fakeTranslate)
	_, err := r.ResolvePath("whatever.mx")
	require.Error(t, err)
}

func TestRegistry_RegisteredNamesIncludesBundledSet(t *testing.T) {
	names := RegisteredNames()
	assert.Contains(t, names, "iostream")
	assert.Contains(t, names, "string")
	assert.Contains(t, names, "math")
	assert.Contains(t, names, "console")
}
