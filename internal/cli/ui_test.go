package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/go-ordtree/Trees"
)

func TestRender(t *testing.T) {
	sc, err := loadScenario("testdata/ascending.toml")
	require.NoError(t, err)
	assert.Equal(t, "ascending inserts", sc.Name)

	v, err := resolveVariant("", sc)
	require.NoError(t, err)
	res, err := replay(context.Background(), sc, v)
	require.NoError(t, err)

	var buf bytes.Buffer
	render(&buf, sc.Name, res)
	out := buf.String()
	assert.Contains(t, out, "ascending inserts")
	assert.Contains(t, out, "[1 3 4 5]")
	assert.Contains(t, out, "yes")
	assert.NotContains(t, out, "unexpected")

	// sorted inserts without balancing make a chain
	res, err = replay(context.Background(), sc, Trees.Plain)
	require.NoError(t, err)
	buf.Reset()
	render(&buf, sc.Name, res)
	assert.Contains(t, buf.String(), "no")
	assert.Len(t, res.Levels, 4)
}
