package chart

import (
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultChart(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.Accounts)

	bank, ok := c.Find("1930")
	require.True(t, ok)
	assert.Equal(t, domain.Asset, bank.Type)

	sales, ok := c.Find("3001")
	require.True(t, ok)
	assert.Equal(t, domain.Revenue, sales.Type)

	result, ok := c.Find("2099")
	require.True(t, ok)
	assert.Equal(t, domain.Liability, result.Type)

	_, ok = c.Find("0000")
	assert.False(t, ok)
}

func TestParseRejectsBadCharts(t *testing.T) {
	_, err := Parse([]byte("name: x\naccounts:\n  - {number: \"1\", name: a, type: EQUITY}\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("name: x\naccounts:\n  - {number: \"1\", name: a, type: ASSET}\n  - {number: \"1\", name: b, type: ASSET}\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("name: x\naccounts:\n  - {number: \"\", name: a, type: ASSET}\n"))
	assert.Error(t, err)

	_, err = Parse([]byte(":::"))
	assert.Error(t, err)
}
