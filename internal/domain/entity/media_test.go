package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMediaKind_ObjectPath(t *testing.T) {
	owner := uuid.MustParse("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b")
	now := time.UnixMilli(1700000000123)

	tests := []struct {
		kind MediaKind
		want string
	}{
		{kind: MediaRecipeImage, want: "recipes/0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b/1700000000123.jpg"},
		{kind: MediaIngredientsImage, want: "recipes/0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b/ingredients.jpg"},
		{kind: MediaCountryFlag, want: "flags/0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b.jpg"},
		{kind: MediaCountryImage, want: "countries/0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b/1700000000123.jpg"},
		{kind: MediaKind("avatar"), want: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.ObjectPath(owner, "jpg", now))
			// Same inputs always produce the same path.
			assert.Equal(t, tt.kind.ObjectPath(owner, "jpg", now), tt.kind.ObjectPath(owner, "jpg", now))
		})
	}
}

func TestUploadFile_ExtAndIsImage(t *testing.T) {
	tests := []struct {
		name        string
		file        UploadFile
		wantExt     string
		wantIsImage bool
	}{
		{name: "upper-case extension", file: UploadFile{Name: "Dish.JPG", ContentType: "image/jpeg"}, wantExt: "jpg", wantIsImage: true},
		{name: "no extension", file: UploadFile{Name: "dish", ContentType: "image/webp"}, wantExt: DefaultImageExt, wantIsImage: true},
		{name: "multiple dots", file: UploadFile{Name: "my.dish.png", ContentType: "image/png"}, wantExt: "png", wantIsImage: true},
		{name: "pdf", file: UploadFile{Name: "menu.pdf", ContentType: "application/pdf"}, wantExt: "pdf", wantIsImage: false},
		{name: "empty content type", file: UploadFile{Name: "x.png"}, wantExt: "png", wantIsImage: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantExt, tt.file.Ext())
			assert.Equal(t, tt.wantIsImage, tt.file.IsImage())
		})
	}
}
