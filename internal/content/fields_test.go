package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextAcceptsScalars(t *testing.T) {
	cases := map[string]Text{
		`"Go"`:  "Go",
		`42`:    "42",
		`1.50`:  "1.5",
		`-3`:    "-3",
		`true`:  "true",
		`false`: "false",
	}
	for in, want := range cases {
		var got Text
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		require.Equal(t, want, got, in)
	}
}

func TestTextRejectsObjectsAndArrays(t *testing.T) {
	var s Skill
	err := json.Unmarshal([]byte(`{"name":{"nested":true}}`), &s)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cast to string failed")

	require.Error(t, json.Unmarshal([]byte(`{"name":["a"]}`), &s))
}

func TestTextNullLeavesFieldUnset(t *testing.T) {
	var s Skill
	require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &s))
	require.Nil(t, s.Name)
}

func TestTagsAcceptSingleValueOrList(t *testing.T) {
	var it Item
	require.NoError(t, json.Unmarshal([]byte(`{"tags":"go"}`), &it))
	require.Equal(t, Tags{"go"}, *it.Tags)

	it = Item{}
	require.NoError(t, json.Unmarshal([]byte(`{"tags":["go",7,true]}`), &it))
	require.Equal(t, Tags{"go", "7", "true"}, *it.Tags)

	it = Item{}
	require.NoError(t, json.Unmarshal([]byte(`{"tags":[]}`), &it))
	require.Equal(t, Tags{}, *it.Tags)

	require.Error(t, json.Unmarshal([]byte(`{"tags":{"a":1}}`), &it))
	require.Error(t, json.Unmarshal([]byte(`{"tags":[{"a":1}]}`), &it))
}

func TestTextMarshalsAsString(t *testing.T) {
	n := Text("42")
	b, err := json.Marshal(Skill{Name: &n})
	require.NoError(t, err)
	require.Contains(t, string(b), `"name":"42"`)
}
