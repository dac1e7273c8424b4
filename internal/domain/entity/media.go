package entity

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultImageExt is used when an uploaded file name carries no extension.
const DefaultImageExt = "png"

// MediaKind selects the object path layout and the entity field an upload belongs to.
type MediaKind string

const (
	MediaRecipeImage      MediaKind = "recipe_image"
	MediaIngredientsImage MediaKind = "ingredients_image"
	MediaCountryFlag      MediaKind = "country_flag"
	MediaCountryImage     MediaKind = "country_image"
)

// IsValid checks if the MediaKind is a valid value.
func (k MediaKind) IsValid() bool {
	switch k {
	case MediaRecipeImage, MediaIngredientsImage, MediaCountryFlag, MediaCountryImage:
		return true
	default:
		return false
	}
}

// ObjectPath derives the bucket path of an upload. Timestamped kinds produce a
// new object per upload; the others overwrite a fixed path.
func (k MediaKind) ObjectPath(ownerID uuid.UUID, ext string, now time.Time) string {
	switch k {
	case MediaRecipeImage:
		return fmt.Sprintf("recipes/%s/%d.%s", ownerID, now.UnixMilli(), ext)
	case MediaIngredientsImage:
		return fmt.Sprintf("recipes/%s/ingredients.%s", ownerID, ext)
	case MediaCountryFlag:
		return fmt.Sprintf("flags/%s.%s", ownerID, ext)
	case MediaCountryImage:
		return fmt.Sprintf("countries/%s/%d.%s", ownerID, now.UnixMilli(), ext)
	default:
		return ""
	}
}

// UploadFile is an image handed to the media service.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// IsImage reports whether the declared content type is an image type.
func (f *UploadFile) IsImage() bool {
	return strings.HasPrefix(f.ContentType, "image/")
}

// Ext returns the lower-cased extension of the file name, or DefaultImageExt.
func (f *UploadFile) Ext() string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(f.Name)), ".")
	if ext == "" {
		return DefaultImageExt
	}

	return ext
}
