package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// MediaUsecase stores images in object storage and links them to catalog entities.
type MediaUsecase interface {
	// Upload validates and stores the file, returning its public URL.
	Upload(ctx context.Context, file *entity.UploadFile, ownerID uuid.UUID, kind entity.MediaKind) (string, error)

	// AttachImage uploads the file and then writes its URL into the image field
	// of the owning country or recipe. The two steps are not atomic.
	AttachImage(ctx context.Context, session *entity.Session, ownerID uuid.UUID, kind entity.MediaKind, file *entity.UploadFile) (*AttachImageOutput, error)
}

// AttachImageOutput carries the stored URL and the refreshed owner.
type AttachImageOutput struct {
	URL     string          `json:"url"`
	Country *entity.Country `json:"country,omitempty"`
	Recipe  *entity.Recipe  `json:"recipe,omitempty"`
}
