package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/yardsale/internal/models"
)

func sampleDataset() models.Dataset {
	return models.Dataset{
		Sellers: []models.Seller{{ID: "s1", Name: "Alice"}, {ID: "s2", Name: "Bob"}},
		SoldItems: []models.SoldItem{
			{ID: "x1", Name: "Mug", Amount: 2.5, SellerID: "s1", Timestamp: 1000},
			{ID: "x2", Name: "Lamp", Amount: 1234.5, SellerID: "s1", Timestamp: 2000},
			{ID: "x3", Name: "Pen", Amount: 0.5, SellerID: "s2", Timestamp: 3000},
		},
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, sampleDataset(), "", 2))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[1], "Alice")
	assert.Contains(t, lines[1], "$1,237.00")
	assert.Contains(t, lines[2], "50¢")
	assert.Contains(t, lines[3], "$1,237.50")
	assert.Contains(t, lines[5], "Pen", "newest sold item first")
	assert.Contains(t, lines[6], "Lamp")
}

func TestWriteReportFiltered(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, sampleDataset(), "s2", 10))

	out := buf.String()
	assert.Contains(t, out, "Pen")
	assert.NotContains(t, out, "Mug")
}

func TestWriteSellers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSellers(&buf, sampleDataset()))
	assert.Equal(t, "s1\tAlice\t2\ns2\tBob\t1\n", buf.String())
}
