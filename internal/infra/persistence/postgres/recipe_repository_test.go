package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRecipeRepository_SearchEscapesLikeWildcards(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPattern string
	}{
		{name: "plain", query: "  pho ", wantPattern: "%pho%"},
		{name: "percent", query: "100%", wantPattern: `%100\%%`},
		{name: "underscore", query: "a_b", wantPattern: `%a\_b%`},
		{name: "backslash", query: `c:\x`, wantPattern: `%c:\\x%`},
		{name: "comma is literal", query: "salt, pepper", wantPattern: "%salt, pepper%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, statements := newDryRunDB(t)

			var vars []interface{}
			require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_vars", func(tx *gorm.DB) {
				vars = append(vars, tx.Statement.Vars...)
			}))

			_, err := NewRecipeRepository(db).Search(context.Background(), tt.query)
			require.NoError(t, err)

			require.Len(t, *statements, 1)
			assert.Contains(t, (*statements)[0], `ILIKE $1 ESCAPE '\'`)
			assert.Equal(t, []interface{}{tt.wantPattern, tt.wantPattern, tt.wantPattern}, vars)
		})
	}
}
