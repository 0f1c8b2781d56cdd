package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDocJSON = `{
	"id": 7,
	"objectId": "64b5f3a2e4b0c8d9a1f2e3d4",
	"title": "Toast",
	"items": [
		{"id": "bread", "kind": "ingredient", "name": "Bread", "identity": [{"id": 12, "name": "white bread"}]}
	],
	"instructions": [
		{"id": 1, "action": {"id": 3, "name": "toast"}, "ingredients": [{"itemId": "bread", "count": 2}], "equipment": [], "nextInstructionIds": [], "prerequisiteInstructionIds": []}
	],
	"rootInstructionIds": [1]
}`

func TestDecodeDocument(t *testing.T) {
	doc, err := DecodeDocument(strings.NewReader(minimalDocJSON))
	require.NoError(t, err)

	assert.Equal(t, 7, doc.ID)
	assert.Equal(t, "64b5f3a2e4b0c8d9a1f2e3d4", doc.ObjectID)
	assert.Equal(t, "Toast", doc.Title)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, SymbolRef{ID: 12, Name: "white bread"}, doc.Items[0].Identity[0])
	require.Len(t, doc.Instructions, 1)
	require.NotNil(t, doc.Instructions[0].Ingredients[0].Count)
	assert.Equal(t, 2, *doc.Instructions[0].Ingredients[0].Count)
	assert.Equal(t, []int{1}, doc.RootInstructionIDs)
}

func TestDecodeDocument_RejectsUnknownFields(t *testing.T) {
	raw := strings.Replace(minimalDocJSON, `"title"`, `"servings": 4, "title"`, 1)
	_, err := DecodeDocument(strings.NewReader(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "servings")
}

func TestDecodeDocument_RejectsTrailingData(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(minimalDocJSON + "\n{}"))
	require.ErrorContains(t, err, "trailing data")
}

func TestDecodeDocument_RejectsMalformedJSON(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(`{"id": `))
	require.Error(t, err)
}
