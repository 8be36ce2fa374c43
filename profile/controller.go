package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ShareFrame/profile-screen-service/auth"
	"github.com/ShareFrame/profile-screen-service/config"
	"github.com/ShareFrame/profile-screen-service/dynamodb"
	"github.com/ShareFrame/profile-screen-service/media"
	"github.com/ShareFrame/profile-screen-service/models"
	"github.com/ShareFrame/profile-screen-service/s3"
	"github.com/sirupsen/logrus"
)

// RouteLogin is the unauthenticated entry point.
const RouteLogin = "login"

var ErrEmptyPassword = errors.New("password is required")

var errImageNotSaved = errors.New("image uploaded but not saved to profile")

type Options struct {
	LoadFailurePolicy config.LoadFailurePolicy
	// DistinguishAuthOutage reports account store outages during
	// re-validation as a generic error instead of "Incorrect password.".
	DistinguishAuthOutage bool
}

type LoadRequest struct {
	Identity models.Identity
}

type SaveRequest struct {
	Identity models.Identity
	Name     string
	Phone    string
	Pseudo   string
}

type UploadRequest struct {
	Identity models.Identity
	Picker   ImagePicker
}

type DeleteRequest struct {
	Identity models.Identity
	Password string
}

type LogoutRequest struct {
	Identity models.Identity
}

// Controller runs the profile screen's actions and holds the screen state
// between them. Actions are not serialized against each other.
type Controller struct {
	records    RecordStore
	blobs      BlobStore
	identities Identities
	opts       Options

	mu            sync.Mutex
	profile       models.UserProfile
	uploading     bool
	editVisible   bool
	deleteVisible bool
	notice        *models.Notice
	route         string
	success       bool
}

func NewController(records RecordStore, blobs BlobStore, identities Identities, opts Options) *Controller {
	if opts.LoadFailurePolicy == "" {
		opts.LoadFailurePolicy = config.LoadFailureBlank
	}
	return &Controller{
		records:    records,
		blobs:      blobs,
		identities: identities,
		opts:       opts,
	}
}

func (c *Controller) State() models.ScreenResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	var notice *models.Notice
	if c.notice != nil {
		n := *c.notice
		notice = &n
	}

	return models.ScreenResponse{
		Profile:       c.profile,
		Uploading:     c.uploading,
		EditVisible:   c.editVisible,
		DeleteVisible: c.deleteVisible,
		Notice:        notice,
		Route:         c.route,
		Success:       c.success,
	}
}

func (c *Controller) finish(success bool, title, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.success = success
	c.notice = nil
	if title != "" {
		c.notice = &models.Notice{Title: title, Message: message}
	}
}

// Load fetches the signed-in user's record. A missing record shows blank
// fields. A failed fetch is silent under LoadFailureBlank.
func (c *Controller) Load(ctx context.Context, req LoadRequest) error {
	log := logrus.WithFields(logrus.Fields{"action": "load", "user_id": req.Identity.UserID})

	blank := models.UserProfile{UserID: req.Identity.UserID, Email: req.Identity.Email}

	p, err := c.records.GetUserProfile(ctx, req.Identity.UserID)
	switch {
	case err == nil:
		p.UserID = req.Identity.UserID
		c.setProfile(*p)
		c.finish(true, "", "")
		return nil
	case errors.Is(err, dynamodb.ErrProfileNotFound):
		log.Info("No profile record, showing blank profile")
		c.setProfile(blank)
		c.finish(true, "", "")
		return nil
	}

	c.setProfile(blank)
	if c.opts.LoadFailurePolicy == config.LoadFailureStrict {
		log.WithError(err).Error("Failed to load profile")
		c.finish(false, "Error", "Failed to load profile.")
		return fmt.Errorf("failed to load profile: %w", err)
	}

	log.WithError(err).Warn("Failed to load profile, showing blank profile")
	c.finish(true, "", "")
	return nil
}

func (c *Controller) setProfile(p models.UserProfile) {
	c.mu.Lock()
	c.profile = p
	c.mu.Unlock()
}

func (c *Controller) OpenEditor() {
	c.mu.Lock()
	c.editVisible = true
	c.deleteVisible = false
	c.mu.Unlock()
}

func (c *Controller) CloseEditor() {
	c.mu.Lock()
	c.editVisible = false
	c.mu.Unlock()
}

// SaveEdits writes name, phone and pseudo, and nothing else.
func (c *Controller) SaveEdits(ctx context.Context, req SaveRequest) error {
	log := logrus.WithFields(logrus.Fields{"action": "save", "user_id": req.Identity.UserID})

	update := models.ProfileUpdate{
		Name:   &req.Name,
		Phone:  &req.Phone,
		Pseudo: &req.Pseudo,
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.records.UpdateUserProfile(ctx, req.Identity.UserID, update); err != nil {
		log.WithError(err).Error("Failed to update profile")
		c.finish(false, "Error", "Failed to update profile.")
		return err
	}

	c.mu.Lock()
	c.profile.Name = req.Name
	c.profile.Phone = req.Phone
	c.profile.Pseudo = req.Pseudo
	c.editVisible = false
	c.mu.Unlock()

	log.Info("Profile updated")
	c.finish(true, "Success", "Profile updated!")
	return nil
}

// ImageKey is the blob key for a user's picture; a new upload replaces the old one.
func ImageKey(userID string) string {
	return userID + ".jpg"
}

// UploadPicture replaces the profile picture. The upload and the record
// write are not atomic: if the write fails the new object stays in the
// bucket and the record keeps the old address.
func (c *Controller) UploadPicture(ctx context.Context, req UploadRequest) error {
	log := logrus.WithFields(logrus.Fields{"action": "upload", "user_id": req.Identity.UserID})

	img, err := req.Picker.Pick(ctx)
	switch {
	case errors.Is(err, media.ErrPermissionDenied):
		log.Warn("Gallery permission denied")
		c.finish(false, "Permission Required", "Permission to access gallery is required!")
		return err
	case errors.Is(err, media.ErrPickCanceled):
		c.finish(false, "", "")
		return nil
	case errors.Is(err, media.ErrNotAnImage):
		log.WithError(err).Warn("Rejected non-image upload")
		c.finish(false, "Upload Error", "The selected file is not an image.")
		return err
	case err != nil:
		log.WithError(err).Error("Failed to read selected image")
		c.finish(false, "Upload Error", "Failed to upload image. Please try again.")
		return err
	}

	c.mu.Lock()
	c.uploading = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.uploading = false
		c.mu.Unlock()
	}()

	url, err := c.storeImage(ctx, req.Identity.UserID, img)
	if err != nil {
		if ctx.Err() != nil {
			log.WithError(err).Warn("Upload abandoned")
			c.finish(false, "", "")
			return err
		}
		log.WithError(err).Error("Failed to upload profile picture")
		c.finish(false, "Upload Error", uploadErrorMessage(err))
		return err
	}

	c.mu.Lock()
	c.profile.ProfileImage = url
	c.mu.Unlock()

	log.WithField("url", url).Info("Profile picture updated")
	c.finish(true, "Success", "Profile picture uploaded successfully!")
	return nil
}

func (c *Controller) storeImage(ctx context.Context, userID string, img models.Image) (string, error) {
	key := ImageKey(userID)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.blobs.UploadObject(ctx, key, img.Data, img.ContentType, true); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := c.blobs.PublicURL(key)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.records.SetProfileImage(ctx, userID, url); err != nil {
		return "", fmt.Errorf("%w: %w", errImageNotSaved, err)
	}

	return url, nil
}

// uploadErrorMessage keeps storage internals out of the notice.
func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, s3.ErrObjectTooLarge):
		return "The image is too large. Please choose a smaller one."
	case errors.Is(err, errImageNotSaved):
		return "The image was uploaded but could not be saved to your profile. Please try again."
	}
	return "Failed to upload image. Please try again."
}

func (c *Controller) OpenDeleteConfirm() {
	c.mu.Lock()
	c.deleteVisible = true
	c.editVisible = false
	c.mu.Unlock()
}

func (c *Controller) CloseDeleteConfirm() {
	c.mu.Lock()
	c.deleteVisible = false
	c.mu.Unlock()
}

// ConfirmDelete re-checks the password, then removes the record before the
// identity. Stopping between the two leaves an inert record, never a live
// account without a profile.
func (c *Controller) ConfirmDelete(ctx context.Context, req DeleteRequest) error {
	log := logrus.WithFields(logrus.Fields{"action": "delete", "user_id": req.Identity.UserID})

	if req.Password == "" {
		c.finish(false, "Error", "Enter your password.")
		return ErrEmptyPassword
	}

	if err := c.identities.Reauthenticate(ctx, req.Identity, req.Password); err != nil {
		if c.opts.DistinguishAuthOutage && errors.Is(err, auth.ErrAuthUnavailable) {
			log.WithError(err).Error("Could not verify password")
			c.finish(false, "Error", "Could not verify your password. Please try again.")
			return err
		}
		log.WithError(err).Warn("Re-authentication failed")
		c.finish(false, "Error", "Incorrect password.")
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.records.DeleteUserProfile(ctx, req.Identity.UserID); err != nil {
		log.WithError(err).Error("Failed to delete profile record")
		c.finish(false, "Error", "Failed to delete account.")
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.identities.DeleteIdentity(ctx, req.Identity); err != nil {
		log.WithError(err).Error("Profile record deleted but account identity remains")
		c.finish(false, "Error", "Failed to delete account.")
		return err
	}

	c.mu.Lock()
	c.profile = models.UserProfile{}
	c.deleteVisible = false
	c.editVisible = false
	c.route = RouteLogin
	c.mu.Unlock()

	log.Info("Account deleted")
	c.finish(true, "Success", "Account deleted.")
	return nil
}

func (c *Controller) Logout(ctx context.Context, req LogoutRequest) error {
	log := logrus.WithFields(logrus.Fields{"action": "logout", "user_id": req.Identity.UserID})

	if err := c.identities.SignOut(ctx, req.Identity); err != nil {
		log.WithError(err).Error("Failed to sign out")
		c.finish(false, "Error", "Failed to logout.")
		return err
	}

	c.mu.Lock()
	c.route = RouteLogin
	c.mu.Unlock()

	c.finish(true, "", "")
	return nil
}
