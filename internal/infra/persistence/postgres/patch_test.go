package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPatch_Normalization(t *testing.T) {
	blank := "   "
	name := "  Jollof Rice "
	zero := 0
	countryID := uuid.New()
	clearCountry := uuid.Nil

	p := patch{}
	p.text("name", &name)
	p.text("description", &blank)
	p.text("history", nil)
	p.int("servings", &zero)
	p.int("prep_time", nil)
	p.uuid("country_id", &countryID)

	assert.Equal(t, patch{
		"name":        "Jollof Rice",
		"description": nil,
		"servings":    0,
		"country_id":  countryID,
	}, p)

	p.uuid("country_id", &clearCountry)
	assert.Nil(t, p["country_id"])
	assert.Contains(t, p, "country_id")
}
