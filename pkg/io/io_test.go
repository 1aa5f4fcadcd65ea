package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/advent/pkg/ordering"
)

func sampleRules() *ordering.RuleSet[int] {
	rs := ordering.NewRuleSet[int]()
	rs.AddRule(97, 75)
	rs.AddRule(75, 47)
	rs.AddRule(97, 47)
	return rs
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(sampleRules(), &buf))

	want := `{
  "nodes": [
    {
      "id": "97"
    },
    {
      "id": "75",
      "row": 1
    },
    {
      "id": "47",
      "row": 2
    }
  ],
  "edges": [
    {
      "from": "75",
      "to": "47"
    },
    {
      "from": "97",
      "to": "47"
    },
    {
      "from": "97",
      "to": "75"
    }
  ]
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(ordering.NewRuleSet[int](), &buf))
	assert.JSONEq(t, `{"nodes": [], "edges": []}`, buf.String())
}

func TestWriteJSONCycleUnranked(t *testing.T) {
	rs := ordering.NewRuleSet[int]()
	rs.AddRule(1, 2)
	rs.AddRule(2, 3)
	rs.AddRule(3, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(rs, &buf))
	assert.JSONEq(t, `{
		"nodes": [{"id": "1"}, {"id": "2"}, {"id": "3"}],
		"edges": [{"from": "1", "to": "2"}, {"from": "2", "to": "3"}, {"from": "3", "to": "1"}]
	}`, buf.String())

	rules, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.True(t, rules.Precedes("3", "1"))
	assert.Equal(t, 3, rules.Len())
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, ExportJSON(sampleRules(), path))

	rules, err := ImportJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 3, rules.Len())
	assert.True(t, rules.Precedes("97", "75"))
	assert.True(t, rules.Precedes("75", "47"))
	assert.False(t, rules.Precedes("47", "97"))
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"duplicate node", `{"nodes":[{"id":"a"},{"id":"a"}],"edges":[]}`, ErrDuplicateNode},
		{"unknown node", `{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"b"}]}`, ErrUnknownNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadJSONMalformed(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"nodes":`))
	assert.Error(t, err)
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
