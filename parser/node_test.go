package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/nullscan/scanerrors"
)

func TestFromValue_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Node
	}{
		{"nil", nil, Node{Kind: KindNull}},
		{"bool", true, Node{Kind: KindBool, Bool: true}},
		{"string", "hello", Node{Kind: KindString, Str: "hello"}},
		{"float64", 1.5, Node{Kind: KindNumber, Num: 1.5}},
		{"int", 42, Node{Kind: KindNumber, Num: 42}},
		{"int64", int64(7), Node{Kind: KindNumber, Num: 7}},
		{"opaque type becomes string", struct{ X int }{X: 1}, Node{Kind: KindString, Str: "{1}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestFromValue_ObjectKeysSorted(t *testing.T) {
	got, err := FromValue(map[string]any{
		"zeta":  1,
		"alpha": nil,
		"mid":   true,
	})
	require.NoError(t, err)
	require.Equal(t, KindObject, got.Kind)

	keys := make([]string, 0, len(got.Members))
	for _, m := range got.Members {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, keys)
}

func TestFromValue_Nested(t *testing.T) {
	got, err := FromValue(map[string]any{
		"items": []any{1, nil, "x"},
	})
	require.NoError(t, err)

	items, ok := got.Get("items")
	require.True(t, ok)
	require.Equal(t, KindArray, items.Kind)
	require.Len(t, items.Items, 3)
	assert.Equal(t, KindNumber, items.Items[0].Kind)
	assert.True(t, items.Items[1].IsNull())
	assert.Equal(t, KindString, items.Items[2].Kind)
}

func TestFromValue_InterfaceKeyedMap(t *testing.T) {
	got, err := FromValue(map[any]any{
		"b": 2,
		"a": 1,
	})
	require.NoError(t, err)
	require.Equal(t, KindObject, got.Kind)
	require.Len(t, got.Members, 2)
	assert.Equal(t, "a", got.Members[0].Key)
	assert.Equal(t, "b", got.Members[1].Key)
}

func TestFromValue_CyclicInput(t *testing.T) {
	m := map[string]any{}
	m["self"] = m

	_, err := FromValue(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanerrors.ErrResourceLimit))
}

func TestNode_Get(t *testing.T) {
	n := &Node{Kind: KindObject, Members: []Member{
		{Key: "a", Value: &Node{Kind: KindNumber, Num: 1}},
		{Key: "b", Value: &Node{Kind: KindNull}},
	}}

	a, ok := n.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, a.Num)

	b, ok := n.Get("b")
	require.True(t, ok)
	assert.True(t, b.IsNull())

	_, ok = n.Get("missing")
	assert.False(t, ok)

	_, ok = (&Node{Kind: KindArray}).Get("a")
	assert.False(t, ok)
}

func TestNode_Predicates(t *testing.T) {
	var nilNode *Node
	assert.True(t, nilNode.IsNull())
	assert.False(t, nilNode.IsContainer())

	assert.True(t, (&Node{Kind: KindNull}).IsNull())
	assert.False(t, (&Node{Kind: KindString}).IsNull())
	assert.True(t, (&Node{Kind: KindObject}).IsContainer())
	assert.True(t, (&Node{Kind: KindArray}).IsContainer())
	assert.False(t, (&Node{Kind: KindBool}).IsContainer())
}

func TestNode_Len(t *testing.T) {
	assert.Equal(t, 0, (*Node)(nil).Len())
	assert.Equal(t, 0, (&Node{Kind: KindString}).Len())
	assert.Equal(t, 2, (&Node{Kind: KindObject, Members: make([]Member, 2)}).Len())
	assert.Equal(t, 3, (&Node{Kind: KindArray, Items: make([]*Node, 3)}).Len())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
