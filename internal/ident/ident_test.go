package ident

import (
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(node)
}

func TestSaleCodeSortableAndUnique(t *testing.T) {
	g := newGenerator(t)
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	first := g.SaleCode(now)
	second := g.SaleCode(now)
	later := g.SaleCode(now.Add(time.Minute))

	assert.True(t, strings.HasPrefix(first, SaleCodePrefix))
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second)
	assert.Less(t, second, later)
}

func TestNextCustomerCode(t *testing.T) {
	g := newGenerator(t)

	assert.Equal(t, "00001", g.NextCustomerCode(""))
	assert.Equal(t, "00001", g.NextCustomerCode("garbage"))
	assert.Equal(t, "00002", g.NextCustomerCode("00001"))
	assert.Equal(t, "00100", g.NextCustomerCode("00099"))
	assert.Equal(t, "100000", g.NextCustomerCode("99999"))
}

func TestPortalCredentialRandom(t *testing.T) {
	g := newGenerator(t)

	a, err := g.PortalCredential()
	require.NoError(t, err)
	b, err := g.PortalCredential()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 16)
}
