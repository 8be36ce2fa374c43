package profile

import (
	"context"

	"github.com/ShareFrame/profile-screen-service/models"
)

//go:generate mockgen -destination=../mocks/mock_profile.go -package=mocks github.com/ShareFrame/profile-screen-service/profile RecordStore,BlobStore,Identities,ImagePicker

type RecordStore interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID string, update models.ProfileUpdate) error
	SetProfileImage(ctx context.Context, userID, imageURL string) error
	DeleteUserProfile(ctx context.Context, userID string) error
}

type BlobStore interface {
	UploadObject(ctx context.Context, key string, data []byte, contentType string, overwrite bool) error
	PublicURL(key string) string
}

type Identities interface {
	Reauthenticate(ctx context.Context, identity models.Identity, password string) error
	DeleteIdentity(ctx context.Context, identity models.Identity) error
	SignOut(ctx context.Context, identity models.Identity) error
}

type ImagePicker interface {
	Pick(ctx context.Context) (models.Image, error)
}
