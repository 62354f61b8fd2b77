package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		kind      Kind
		expectErr bool
		rendered  string
	}{
		{name: "int", raw: "5", kind: Int, rendered: "5"},
		{name: "negative int", raw: "-5", kind: Int, rendered: "-5"},
		{name: "malformed int", raw: "abc", kind: Int, expectErr: true},
		{name: "partial int", raw: "5x", kind: Int, expectErr: true},
		{name: "float", raw: "2.75", kind: Float, rendered: "2.75"},
		{name: "malformed float", raw: "2.75x", kind: Float, expectErr: true},
		{name: "string identity", raw: "GREEN", kind: String, rendered: "GREEN"},
		{name: "bool literal true", raw: "true", kind: Bool, rendered: "true"},
		{name: "bool literal one", raw: "1", kind: Bool, rendered: "true"},
		// Unrecognized strings coerce to false without error.
		{name: "bool anything else", raw: "yes", kind: Bool, rendered: "false"},
		{name: "bool case sensitive", raw: "True", kind: Bool, rendered: "false"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Convert(tc.raw, tc.kind)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
			assert.Equal(t, tc.rendered, v.Render())
		})
	}
}

func TestInfer(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		kind     Kind
		rendered string
	}{
		{name: "bool literal true", raw: "true", kind: Bool, rendered: "true"},
		{name: "bool literal false", raw: "false", kind: Bool, rendered: "false"},
		{name: "bool literal one", raw: "1", kind: Bool, rendered: "true"},
		{name: "bool literal zero", raw: "0", kind: Bool, rendered: "false"},
		{name: "integer", raw: "42", kind: Int, rendered: "42"},
		{name: "negative integer", raw: "-42", kind: Int, rendered: "-42"},
		{name: "float", raw: "3.5", kind: Float, rendered: "3.5"},
		{name: "partial number falls back to string", raw: "4x", kind: String, rendered: "4x"},
		{name: "plain string", raw: "GREEN", kind: String, rendered: "GREEN"},
		{name: "empty string", raw: "", kind: String, rendered: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := Infer(tc.raw)
			assert.Equal(t, tc.kind, v.Kind())
			assert.Equal(t, tc.rendered, v.Render())
		})
	}
}
