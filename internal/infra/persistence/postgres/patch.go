package postgres

import (
	"passport/internal/util"

	"github.com/google/uuid"
)

// patch collects the columns of a partial update. Absent fields are skipped;
// blank text is written as NULL.
type patch map[string]any

func (p patch) text(column string, value *string) {
	if value == nil {
		return
	}
	if normalized := util.NullableText(*value); normalized != nil {
		p[column] = *normalized

		return
	}
	p[column] = nil
}

func (p patch) int(column string, value *int) {
	if value == nil {
		return
	}
	p[column] = *value
}

func (p patch) uuid(column string, value *uuid.UUID) {
	if value == nil {
		return
	}
	if *value == uuid.Nil {
		p[column] = nil

		return
	}
	p[column] = *value
}

func (p patch) set(column string, value any) {
	p[column] = value
}
