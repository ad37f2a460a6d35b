package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chocolate Fudge Cake", "Chocolate Fudge Cake"},
		{"  padded   out  ", "padded out"},
		{"spicy!!! <b>hot</b> wings", "spicy b hot b wings"},
		{"semi-sweet, 70% cacao", "semi-sweet, 70 cacao"},
		{"", ""},
		{"***", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SanitizeText(c.in), "SanitizeText(%q)", c.in)
	}
}

func TestParseDelimitedField(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ParseDelimitedField(nil))
	})

	t.Run("string slice passes through", func(t *testing.T) {
		got := ParseDelimitedField([]string{"a", "b"})
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("interface slice from decoded json", func(t *testing.T) {
		got := ParseDelimitedField([]interface{}{"flour", " eggs ", ""})
		assert.Equal(t, []string{"flour", "eggs"}, got)
	})

	t.Run("json array string", func(t *testing.T) {
		got := ParseDelimitedField(`["Dessert","Low Protein"]`)
		assert.Equal(t, []string{"Dessert", "Low Protein"}, got)
	})

	t.Run("semicolon list", func(t *testing.T) {
		got := ParseDelimitedField("blueberries;granulated sugar; vanilla yogurt")
		assert.Equal(t, []string{"blueberries", "granulated sugar", "vanilla yogurt"}, got)
	})

	t.Run("comma list", func(t *testing.T) {
		got := ParseDelimitedField("Chocolate,Cake,Oven")
		assert.Equal(t, []string{"Chocolate", "Cake", "Oven"}, got)
	})

	t.Run("semicolon beats comma", func(t *testing.T) {
		got := ParseDelimitedField("one, two;three")
		assert.Equal(t, []string{"one, two", "three"}, got)
	})

	t.Run("single scalar wraps", func(t *testing.T) {
		assert.Equal(t, []string{"Bread"}, ParseDelimitedField("Bread"))
		assert.Equal(t, []string{"42"}, ParseDelimitedField(42))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Nil(t, ParseDelimitedField("   "))
	})

	t.Run("malformed json array string degrades to split", func(t *testing.T) {
		got := ParseDelimitedField(`[not, valid, json]`)
		assert.Equal(t, []string{"[not", "valid", "json]"}, got)
	})
}

func TestDecodeCollection(t *testing.T) {
	doc := `[
	  {
	    "recipe_id": "7", "name": " Herbed <i>Butter</i> ", "description": "Soft & spreadable!",
	    "author_id": 1044,
	    "keywords": "Condiment;Quick",
	    "recipe_ingredient_parts": ["butter", "parsley"],
	    "aggregated_rating": "4.5", "review_count": 3
	  }
	]`

	recipes, err := DecodeCollection([]byte(doc))
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	r := recipes[0]
	assert.Equal(t, int64(7), r.RecipeID)
	assert.Equal(t, "Herbed i Butter i", r.Name)
	assert.Equal(t, "Soft spreadable", r.Description)
	assert.Equal(t, "1044", r.AuthorID)
	assert.Equal(t, []string{"Condiment", "Quick"}, r.Keywords)
	assert.Equal(t, []string{"butter", "parsley"}, r.RecipeIngredientParts)
	assert.Equal(t, 4.5, r.AggregatedRating)
	assert.Equal(t, 3, r.ReviewCount)
}

func TestDecodeCollectionRejectsMalformedDocument(t *testing.T) {
	_, err := DecodeCollection([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}
