package goargs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedValues(t *testing.T) *Values {
	t.Helper()
	p := newTestParser()
	p.AddArgument("port").TypeInt().DefaultInt(8080).AddAlias("p")
	p.AddArgument("color").TypeString().DefaultString("RED").AddAlias("c")
	p.AddArgument("debug").Flag(true).AddAlias("d")

	vals, err := p.Parse(context.Background(), []string{"prog", "-p", "9090", "-d"})
	require.NoError(t, err)
	return vals
}

func TestValuesQueryByCanonicalName(t *testing.T) {
	vals := parsedValues(t)

	port, err := vals.GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 9090, port)

	color, err := vals.GetString("color")
	require.NoError(t, err)
	assert.Equal(t, "RED", color)

	debug, err := vals.GetBool("debug")
	require.NoError(t, err)
	assert.True(t, debug)
}

func TestValuesQueryByAlias(t *testing.T) {
	vals := parsedValues(t)

	port, err := vals.GetInt("p")
	require.NoError(t, err)
	assert.Equal(t, 9090, port)

	debug, err := vals.GetBool("d")
	require.NoError(t, err)
	assert.True(t, debug)
}

func TestValuesQueryToleratesDashPrefixes(t *testing.T) {
	vals := parsedValues(t)

	port, err := vals.GetInt("--port")
	require.NoError(t, err)
	assert.Equal(t, 9090, port)

	port, err = vals.GetInt("-p")
	require.NoError(t, err)
	assert.Equal(t, 9090, port)
}

func TestValuesUnknownName(t *testing.T) {
	vals := parsedValues(t)

	_, err := vals.GetInt("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown argument")
}

func TestValuesKindMismatchFailsLoudly(t *testing.T) {
	vals := parsedValues(t)

	_, err := vals.GetString("port")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holds int, not string")

	_, err = vals.GetFloat("port")
	require.Error(t, err)

	_, err = vals.GetBool("color")
	require.Error(t, err)
}
