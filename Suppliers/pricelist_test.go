package Suppliers

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleList = `
<html><body>
<table>
  <tr><th>Code</th><th>Description</th><th>Price</th></tr>
  <tr><td>BRK-01</td><td>Brake pad set</td><td>$4.50</td></tr>
  <tr><td>OIL-01</td><td>Engine oil 5W-30</td><td>7.25</td></tr>
  <tr><td></td><td>Missing code</td><td>9.99</td></tr>
  <tr><td>FLT-01</td><td>Bad price</td><td>call us</td></tr>
</table>
</body></html>`

func TestParsePriceListDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sampleList))
	require.NoError(t, err)

	quotes := ParsePriceListDocument(doc, 7)
	require.Len(t, quotes, 2)

	assert.Equal(t, "BRK-01", quotes[0].MaterialCode)
	assert.Equal(t, "Brake pad set", quotes[0].Description)
	assert.InDelta(t, 4.50, quotes[0].Price, 1e-9)
	assert.EqualValues(t, 7, quotes[0].SupplierID)

	assert.Equal(t, "OIL-01", quotes[1].MaterialCode)
	assert.InDelta(t, 7.25, quotes[1].Price, 1e-9)
}

func TestParsePriceListDocumentEmpty(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><p>No table here</p></body></html>"))
	require.NoError(t, err)

	assert.Empty(t, ParsePriceListDocument(doc, 1))
}
