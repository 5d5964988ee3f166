package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortField(t *testing.T) {
	for _, valid := range []string{"key", "name", "retailer", "brand", "model", "price"} {
		f, err := ParseSortField(valid)
		require.NoError(t, err)
		assert.Equal(t, SortField(valid), f)
	}

	_, err := ParseSortField("color")
	assert.Error(t, err)
}

func TestParseSortDirection(t *testing.T) {
	d, err := ParseSortDirection("asc")
	require.NoError(t, err)
	assert.Equal(t, Ascending, d)

	_, err = ParseSortDirection("up")
	assert.Error(t, err)
}

func TestSortDirectionToggle(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Toggle())
	assert.Equal(t, Ascending, Descending.Toggle())
}

func TestProductJSONNames(t *testing.T) {
	data, err := json.Marshal(Product{Key: 1, Name: "Widget", Price: 9.99})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "product_key")
	assert.Contains(t, m, "product_name")
	assert.NotContains(t, m, "product_description", "empty description is omitted")
}
