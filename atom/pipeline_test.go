package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPipelineFormatParenArgs exercises the full pipeline on a small
// call-expression-shaped tree: call(1) -> [name(2), args(3, multi-line)
// -> [open(4), a(5), b(7), close(8)]]. The query emits captures as a
// real grammar's call/argument_list query would: a space between name
// and args, a softline after the open paren, a delimiter after the
// first argument, and a softline before the close paren.
func TestPipelineFormatParenArgs(t *testing.T) {
	root := link(&fakeNode{
		id: 1, startRow: 0, endRow: 2,
		children: []*fakeNode{
			{id: 2, startRow: 0, endRow: 0, byteStart: 0, byteEnd: 1},
			{
				id: 3, startRow: 0, endRow: 2,
				children: []*fakeNode{
					{id: 4, startRow: 0, endRow: 0, byteStart: 1, byteEnd: 2},
					{id: 5, startRow: 1, endRow: 1, byteStart: 2, byteEnd: 3},
					{id: 7, startRow: 2, endRow: 2, byteStart: 4, byteEnd: 5},
					{id: 8, startRow: 2, endRow: 2, byteStart: 5, byteEnd: 6},
				},
			},
		},
	})
	source := []byte("f(a,b)")

	captures := []CaptureEvent{
		{Name: "append_space", Node: root.children[0]},
		{Name: "append_empty_softline", Node: root.children[1].children[0]},
		{Name: "append_delimiter", Node: root.children[1].children[1], Delimiter: ",", HasDelimiter: true},
		{Name: "prepend_empty_softline", Node: root.children[1].children[3]},
	}

	p := NewPipeline(nil)
	got, err := p.Format(root, source, captures, nil)
	require.NoError(t, err)

	want := []Atom{
		Leaf("f", 2), Space(),
		Leaf("(", 4), Hardline(),
		Leaf("a", 5), Literal(","),
		Leaf("b", 7),
		Hardline(), Leaf(")", 8),
		Hardline(),
	}
	assert.Equal(t, want, got)
}

func TestPipelineFormatPropagatesQueryError(t *testing.T) {
	root := link(&fakeNode{id: 1, byteStart: 0, byteEnd: 1})
	p := NewPipeline(nil)
	_, err := p.Format(root, []byte("x"), []CaptureEvent{{Name: "nonsense", Node: root}}, nil)
	require.Error(t, err)
	var qe *QueryError
	require.ErrorAs(t, err, &qe)
}

func TestPipelineFormatPropagatesExtractError(t *testing.T) {
	root := link(&fakeNode{id: 1, byteStart: 0, byteEnd: 99})
	p := NewPipeline(nil)
	_, err := p.Format(root, []byte("x"), nil, nil)
	require.Error(t, err)
	var ee *ExtractError
	require.ErrorAs(t, err, &ee)
}

func TestPipelineFormatNilRoot(t *testing.T) {
	p := NewPipeline(nil)
	got, err := p.Format(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []Atom{Hardline()}, got)
}
