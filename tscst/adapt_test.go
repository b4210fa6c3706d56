package tscst

import (
	"testing"

	sitter "github.com/tree-sitter/go-tree-sitter"
	sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"

	"github.com/cyber-nic/cstfmt/cst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseGo(t *testing.T, source string) (*sitter.Tree, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(sitter.NewLanguage(sitter_go.Language()))

	src := []byte(source)
	tree := parser.Parse(src, nil)
	require.NotNil(t, tree)
	return tree, src
}

func TestRootAdaptsRealTree(t *testing.T) {
	tree, src := parseGo(t, "package p\n\nfunc f() {}\n")
	defer tree.Close()

	root := Root(tree, src)
	require.NotNil(t, root)
	assert.Equal(t, "source_file", root.Kind())
	assert.True(t, root.IsNamed())

	start, end := root.ByteRange()
	assert.Equal(t, uint32(0), start)
	assert.Equal(t, uint32(len(src)), end)
}

func TestChildNavigationAndParent(t *testing.T) {
	tree, src := parseGo(t, "package p\n\nfunc f() {}\n")
	defer tree.Close()

	root := Root(tree, src)
	require.True(t, root.ChildCount() > 0)

	var fn cst.Node
	for i := uint32(0); i < root.ChildCount(); i++ {
		c := root.Child(i)
		if c != nil && c.Kind() == "function_declaration" {
			fn = c
		}
	}
	require.NotNil(t, fn)

	parent, ok := fn.Parent()
	require.True(t, ok)
	assert.Equal(t, root.ID(), parent.ID())
}

func TestIDIsStableAcrossRepeatedFetches(t *testing.T) {
	tree, src := parseGo(t, "package p\n\nfunc f() {}\n")
	defer tree.Close()

	root := Root(tree, src)
	first := root.Child(0)
	second := root.Child(0)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID(), second.ID())
}

func TestUnderlyingRoundTrips(t *testing.T) {
	tree, src := parseGo(t, "package p\n")
	defer tree.Close()

	root := Root(tree, src)
	raw, gotSrc, ok := Underlying(root)
	require.True(t, ok)
	assert.Equal(t, "source_file", raw.Kind())
	assert.Equal(t, src, gotSrc)
}
