package bytesize

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type holder struct {
	X ByteSize `json:"x" yaml:"x"`
}

func TestJSON(t *testing.T) {
	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"x": "5 B"}`), &h))
	assert.Equal(t, ByteSize(5), h.X)

	require.NoError(t, json.Unmarshal([]byte(`{"x": 1048576}`), &h))
	assert.Equal(t, MustParse("1 MiB"), h.X)

	require.NoError(t, json.Unmarshal([]byte(`{"x": "9223372036854775807"}`), &h))
	assert.Equal(t, ByteSize(9223372036854775807), h.X)

	out, err := json.Marshal(holder{X: 1907 * MiB})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x": "1.9 GiB"}`, string(out))
}

func TestUnmarshalJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{name: "negative", data: `-1`, is: ErrTypeMismatch},
		{name: "fraction", data: `1.5`, is: ErrTypeMismatch},
		{name: "too large", data: `18446744073709551616`, is: ErrTypeMismatch},
		{name: "bool", data: `true`, is: ErrTypeMismatch},
		{name: "null", data: `null`, is: ErrTypeMismatch},
		{name: "object", data: `{"n": 1}`, is: ErrTypeMismatch},
		{name: "array", data: `[1]`, is: ErrTypeMismatch},
		{name: "bad string", data: `"a124GB"`, is: ErrInvalidNumber},
		{name: "bad unit", data: `"12 XB"`, is: ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ByteSize(7)
			err := b.UnmarshalJSON([]byte(tt.data))
			assert.ErrorIs(t, err, tt.is)
			assert.Equal(t, ByteSize(7), b, "value must be left untouched")
		})
	}

	var b ByteSize
	assert.Error(t, b.UnmarshalJSON([]byte(`{`)))
}

func TestYAML(t *testing.T) {
	var h holder
	require.NoError(t, yaml.Unmarshal([]byte(`x: "2.5 MiB"`), &h))
	assert.Equal(t, MustParse("2.5 MiB"), h.X)

	require.NoError(t, yaml.Unmarshal([]byte(`x: 2.5 MiB`), &h))
	assert.Equal(t, ByteSize(2621440), h.X)

	require.NoError(t, yaml.Unmarshal([]byte(`x: 1048576`), &h))
	assert.Equal(t, MiB, h.X)

	require.NoError(t, yaml.Unmarshal([]byte(`x: "9223372036854775807"`), &h))
	assert.Equal(t, ByteSize(9223372036854775807), h.X)

	out, err := yaml.Marshal(holder{X: 518 * GiB})
	require.NoError(t, err)
	assert.Equal(t, "x: 518.0 GiB\n", string(out))

	for _, bad := range []string{"x: -1", "x: 1.5", "x: [1]", "x: {a: 1}", "x: true"} {
		assert.ErrorIs(t, yaml.Unmarshal([]byte(bad), &h), ErrTypeMismatch, bad)
	}
}

func TestText(t *testing.T) {
	var b ByteSize
	require.NoError(t, b.UnmarshalText([]byte("8P")))
	assert.Equal(t, 8*PB, b)

	text, err := (1536 * B).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5 KiB", string(text))

	assert.ErrorIs(t, b.UnmarshalText(nil), ErrInvalidNumber)
}

func TestBinary(t *testing.T) {
	for _, v := range []ByteSize{0, 1, 1907 * MiB, Max} {
		data, err := v.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, 8)

		var got ByteSize
		require.NoError(t, got.UnmarshalBinary(data))
		assert.Equal(t, v, got)
	}

	var b ByteSize
	assert.Error(t, b.UnmarshalBinary([]byte{1, 2, 3}))
}

func TestFlagValue(t *testing.T) {
	var limit ByteSize
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&limit, "limit", "size limit")

	require.NoError(t, fs.Parse([]string{"--limit", "1.5GiB"}))
	assert.Equal(t, MustParse("1.5GiB"), limit)
	assert.Equal(t, "bytesize", fs.Lookup("limit").Value.Type())
	assert.Equal(t, "1.5 GiB", fs.Lookup("limit").Value.String())

	assert.Error(t, fs.Parse([]string{"--limit", "lots"}))
}
