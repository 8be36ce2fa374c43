package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ShareFrame/profile-screen-service/models"
)

var (
	ErrPermissionDenied = errors.New("permission to access gallery is required")
	ErrPickCanceled     = errors.New("image selection canceled")
	ErrNotAnImage       = errors.New("selected file is not an image")
)

// Permission is the device gate in front of gallery access.
type Permission interface {
	Granted(ctx context.Context) bool
}

type PermissionFunc func(ctx context.Context) bool

func (f PermissionFunc) Granted(ctx context.Context) bool { return f(ctx) }

// Static is a permission already decided by the client.
type Static bool

func (s Static) Granted(context.Context) bool { return bool(s) }

// Source yields the raw bytes of the selected image, or nil if nothing was selected.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
}

type Picker struct {
	Permission Permission
	Source     Source
}

// Pick never touches the source unless permission was granted.
func (p Picker) Pick(ctx context.Context) (models.Image, error) {
	if p.Permission == nil || !p.Permission.Granted(ctx) {
		return models.Image{}, ErrPermissionDenied
	}
	if p.Source == nil {
		return models.Image{}, ErrPickCanceled
	}

	data, err := p.Source.Read(ctx)
	if err != nil {
		return models.Image{}, err
	}
	if len(data) == 0 {
		return models.Image{}, ErrPickCanceled
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return models.Image{}, fmt.Errorf("%w: detected %s", ErrNotAnImage, contentType)
	}

	return models.Image{Data: data, ContentType: contentType}, nil
}

// Base64Source decodes an image sent inline by the client. Data URLs
// ("data:image/png;base64,...") are accepted.
type Base64Source string

func (s Base64Source) Read(ctx context.Context) ([]byte, error) {
	encoded := strings.TrimSpace(string(s))
	if encoded == "" {
		return nil, nil
	}
	if strings.HasPrefix(encoded, "data:") {
		if i := strings.Index(encoded, ","); i >= 0 {
			encoded = encoded[i+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return data, nil
}
