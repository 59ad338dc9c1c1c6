package status

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		name   string
		code   int
		ranges []Range
		want   bool
	}{
		{"inside interval", 200, []Range{Between(200, 299)}, true},
		{"outside interval", 404, []Range{Between(200, 299)}, false},
		{"single code match", 301, []Range{Code(200), Code(301)}, true},
		{"empty policy", 500, nil, false},
		{"lower bound inclusive", 300, []Range{Between(300, 399)}, true},
		{"upper bound inclusive", 399, []Range{Between(300, 399)}, true},
		{"reversed interval never matches", 250, []Range{Between(299, 200)}, false},
		{"reversed bound value never matches", 299, []Range{Between(299, 200)}, false},
		{"later specifier matches", 429, []Range{Between(200, 299), Code(404), Code(429)}, true},
		{"no specifier matches", 503, []Range{Between(200, 299), Code(404)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(tt.code, tt.ranges))
		})
	}
}

func TestInRange_OrderIndependent(t *testing.T) {
	forward := []Range{Code(204), Between(300, 308), Between(200, 201)}
	backward := []Range{Between(200, 201), Between(300, 308), Code(204)}

	for code := 100; code < 600; code++ {
		assert.Equal(t, InRange(code, forward), InRange(code, backward), "code %d", code)
	}
}

func TestPolicyAllows(t *testing.T) {
	p := Policy{Between(200, 299), Code(304)}
	assert.True(t, p.Allows(204))
	assert.True(t, p.Allows(304))
	assert.False(t, p.Allows(302))
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "404", Code(404).String())
	assert.Equal(t, "200-299", Between(200, 299).String())
}

func TestRange_UnmarshalYAML(t *testing.T) {
	t.Run("mixed policy", func(t *testing.T) {
		var doc struct {
			Codes Policy `yaml:"codes"`
		}
		err := yaml.Unmarshal([]byte("codes: [200, [300, 399], 404]\n"), &doc)
		require.NoError(t, err)
		assert.Equal(t, Policy{Code(200), Between(300, 399), Code(404)}, doc.Codes)
	})

	t.Run("rejects reversed interval", func(t *testing.T) {
		var p Policy
		err := yaml.Unmarshal([]byte("[[299, 200]]"), &p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reversed")
	})

	t.Run("rejects wrong arity", func(t *testing.T) {
		var p Policy
		err := yaml.Unmarshal([]byte("[[200, 250, 299]]"), &p)
		require.Error(t, err)
	})

	t.Run("rejects non-numeric code", func(t *testing.T) {
		var p Policy
		err := yaml.Unmarshal([]byte("[ok]"), &p)
		require.Error(t, err)
	})
}

func TestRange_JSON(t *testing.T) {
	t.Run("decodes mixed policy", func(t *testing.T) {
		var p Policy
		require.NoError(t, json.Unmarshal([]byte(`[200, [500, 599]]`), &p))
		assert.Equal(t, Policy{Code(200), Between(500, 599)}, p)
	})

	t.Run("rejects reversed interval", func(t *testing.T) {
		var p Policy
		assert.Error(t, json.Unmarshal([]byte(`[[599, 500]]`), &p))
	})

	t.Run("rejects objects", func(t *testing.T) {
		var p Policy
		assert.Error(t, json.Unmarshal([]byte(`[{"min": 200}]`), &p))
	})

	t.Run("encodes in config shape", func(t *testing.T) {
		data, err := json.Marshal(Policy{Code(200), Between(300, 399)})
		require.NoError(t, err)
		assert.JSONEq(t, `[200, [300, 399]]`, string(data))
	})
}
