package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds statements without a server and records each query's SQL.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=passport dbname=passport sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	var statements []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	}))

	return db, &statements
}

func compactSQL(sql string) string {
	return strings.ReplaceAll(sql, " ", "")
}

func TestRecipeContentRepositories_ListByRecipeBreaksTiesByID(t *testing.T) {
	tests := []struct {
		name      string
		list      func(db *gorm.DB) error
		wantOrder string
	}{
		{
			name: "ingredients",
			list: func(db *gorm.DB) error {
				_, err := NewIngredientRepository(db).ListByRecipe(context.Background(), uuid.New())

				return err
			},
			wantOrder: "ORDERBYorder_indexASC,idASC",
		},
		{
			name: "instructions",
			list: func(db *gorm.DB) error {
				_, err := NewInstructionRepository(db).ListByRecipe(context.Background(), uuid.New())

				return err
			},
			wantOrder: "ORDERBYstep_numberASC,idASC",
		},
		{
			name: "nutrition benefits",
			list: func(db *gorm.DB) error {
				_, err := NewNutritionBenefitRepository(db).ListByRecipe(context.Background(), uuid.New())

				return err
			},
			wantOrder: "ORDERBYorder_indexASC,idASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, statements := newDryRunDB(t)

			require.NoError(t, tt.list(db))

			require.Len(t, *statements, 1)
			assert.Contains(t, compactSQL((*statements)[0]), tt.wantOrder)
		})
	}
}
