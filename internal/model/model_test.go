package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentsString(t *testing.T) {
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "12.34", Cents(1234).String())
	assert.Equal(t, "-3.07", Cents(-307).String())
	assert.Equal(t, "1000.00", Cents(100000).String())
}

func TestParseCents(t *testing.T) {
	for _, s := range []string{"0.00", "0.05", "12.34", "-3.07", "1000.00"} {
		c, err := ParseCents(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.String())
	}
}

func TestParseCentsRejectsBadShapes(t *testing.T) {
	for _, s := range []string{
		"", "12", "12.3", "12.345", "abc", "12.ab",
		"12.-5", "1.+5", "-12.-5", "+1.05", "-.05", "1-2.05",
	} {
		_, err := ParseCents(s)
		assert.Error(t, err, "input %q", s)
	}
}
