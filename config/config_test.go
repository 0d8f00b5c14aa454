package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabstaff/tabstaff"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.False(t, c.TimingSupplied)
	assert.Equal(t, 3, c.GapSize)
	assert.Equal(t, 8, c.TabSpacing)
	assert.True(t, c.HasExtraText)
	assert.True(t, c.KeepExtraText)
	assert.Equal(t, "", c.PlayingLegend)
	assert.Equal(t, "+.WHQESTFO", c.TimingSymbols)
}

func TestDefaultSourceParses(t *testing.T) {
	c, err := Parse(DefaultSource())
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseOverridesDefaults(t *testing.T) {
	c, err := Parse([]byte("timingsupplied: true\ngapsize: 5\nplayinglegend: \"hp\"\n"))
	require.NoError(t, err)
	assert.True(t, c.TimingSupplied)
	assert.Equal(t, 5, c.GapSize)
	assert.Equal(t, "hp", c.PlayingLegend)
	// untouched keys keep their defaults
	assert.Equal(t, 8, c.TabSpacing)
}

func TestParseEmptyDocument(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("gapsize: 3\nfretcount: 36\n"))
	require.Error(t, err)
	var cerr *tabstaff.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestParseRejectsBadValues(t *testing.T) {
	for _, doc := range []string{
		"gapsize: -1",
		"tabspacing: -2",
		"hasextratext: false", // conflicts with the default keepextratext
		"timingsymbols: \"+.WHQ\"",
		"playinglegend: \"h p\"",
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, "document %q", doc)
	}
	_, err := Parse([]byte("hasextratext: false\nkeepextratext: false\n"))
	assert.NoError(t, err)
}

func TestLegendFromConfig(t *testing.T) {
	c := Default()
	c.PlayingLegend = "hp"
	legend, err := c.Legend()
	require.NoError(t, err)
	assert.Equal(t, '+', legend.Tie)
	assert.Equal(t, "hp", legend.Extra)
}

func TestParserOptions(t *testing.T) {
	c := Default()
	c.TimingSupplied = true
	legend, err := c.Legend()
	require.NoError(t, err)
	o := c.ParserOptions(legend)
	assert.True(t, o.TimingSupplied)
	assert.Equal(t, 8, o.TabWidth)
	assert.Equal(t, 3, o.GapSize)
	assert.True(t, o.HasExtraText)
}
