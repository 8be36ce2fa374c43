package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ShareFrame/profile-screen-service/auth"
	"github.com/ShareFrame/profile-screen-service/config"
	"github.com/ShareFrame/profile-screen-service/dynamodb"
	"github.com/ShareFrame/profile-screen-service/media"
	"github.com/ShareFrame/profile-screen-service/mocks"
	"github.com/ShareFrame/profile-screen-service/models"
	"github.com/ShareFrame/profile-screen-service/s3"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identity = models.Identity{UserID: "user123", Email: "john@example.com", SessionID: "sess-1"}

type fixture struct {
	records    *mocks.MockRecordStore
	blobs      *mocks.MockBlobStore
	identities *mocks.MockIdentities
	picker     *mocks.MockImagePicker
	ctrl       *Controller
}

func newFixture(t *testing.T, opts Options) *fixture {
	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	f := &fixture{
		records:    mocks.NewMockRecordStore(mockCtrl),
		blobs:      mocks.NewMockBlobStore(mockCtrl),
		identities: mocks.NewMockIdentities(mockCtrl),
		picker:     mocks.NewMockImagePicker(mockCtrl),
	}
	f.ctrl = NewController(f.records, f.blobs, f.identities, opts)
	return f
}

func strPtr(s string) *string { return &s }

func TestLoad(t *testing.T) {
	t.Run("Existing record", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.records.EXPECT().GetUserProfile(gomock.Any(), "user123").Return(&models.UserProfile{
			Name: "John Doe", Email: "john@example.com", Phone: "0600", Pseudo: "jdoe", ProfileImage: "https://img/old.jpg",
		}, nil)

		require.NoError(t, f.ctrl.Load(context.Background(), LoadRequest{Identity: identity}))

		state := f.ctrl.State()
		assert.Equal(t, "user123", state.Profile.UserID)
		assert.Equal(t, "John Doe", state.Profile.Name)
		assert.Equal(t, "https://img/old.jpg", state.Profile.ProfileImage)
		assert.Nil(t, state.Notice)
	})

	t.Run("Missing record yields blank fields", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.records.EXPECT().GetUserProfile(gomock.Any(), "user123").Return(nil, dynamodb.ErrProfileNotFound)

		require.NoError(t, f.ctrl.Load(context.Background(), LoadRequest{Identity: identity}))

		state := f.ctrl.State()
		assert.Equal(t, models.UserProfile{UserID: "user123", Email: "john@example.com"}, state.Profile)
		assert.Nil(t, state.Notice)
	})

	testCases := []struct {
		name        string
		policy      config.LoadFailurePolicy
		expectError bool
	}{
		{name: "Fetch failure is silent by default", policy: "", expectError: false},
		{name: "Fetch failure is silent under blank policy", policy: config.LoadFailureBlank, expectError: false},
		{name: "Fetch failure is reported under strict policy", policy: config.LoadFailureStrict, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, Options{LoadFailurePolicy: tc.policy})
			f.records.EXPECT().GetUserProfile(gomock.Any(), "user123").Return(nil, fmt.Errorf("network unreachable"))

			err := f.ctrl.Load(context.Background(), LoadRequest{Identity: identity})
			state := f.ctrl.State()

			assert.Empty(t, state.Profile.Name)
			if tc.expectError {
				assert.Error(t, err)
				require.NotNil(t, state.Notice)
				assert.Equal(t, "Failed to load profile.", state.Notice.Message)
			} else {
				assert.NoError(t, err)
				assert.Nil(t, state.Notice)
			}
		})
	}
}

func TestSaveEdits(t *testing.T) {
	t.Run("Writes exactly name, phone and pseudo", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.records.EXPECT().GetUserProfile(gomock.Any(), "user123").Return(&models.UserProfile{
			Name: "Old", Email: "john@example.com", ProfileImage: "https://img/old.jpg",
		}, nil)
		f.records.EXPECT().UpdateUserProfile(gomock.Any(), "user123", models.ProfileUpdate{
			Name:   strPtr("Jane"),
			Phone:  strPtr("0611"),
			Pseudo: strPtr(""),
		}).Return(nil)

		require.NoError(t, f.ctrl.Load(context.Background(), LoadRequest{Identity: identity}))
		f.ctrl.OpenEditor()

		err := f.ctrl.SaveEdits(context.Background(), SaveRequest{Identity: identity, Name: "Jane", Phone: "0611", Pseudo: ""})
		require.NoError(t, err)

		state := f.ctrl.State()
		assert.False(t, state.EditVisible)
		assert.Equal(t, "Jane", state.Profile.Name)
		assert.Equal(t, "0611", state.Profile.Phone)
		assert.Equal(t, "john@example.com", state.Profile.Email)
		assert.Equal(t, "user123", state.Profile.UserID)
		assert.Equal(t, "https://img/old.jpg", state.Profile.ProfileImage)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Profile updated!", state.Notice.Message)
	})

	t.Run("Failure keeps the editor open", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.records.EXPECT().UpdateUserProfile(gomock.Any(), "user123", gomock.Any()).Return(errors.New("throttled"))

		f.ctrl.OpenEditor()
		err := f.ctrl.SaveEdits(context.Background(), SaveRequest{Identity: identity, Name: "Jane"})
		assert.Error(t, err)

		state := f.ctrl.State()
		assert.True(t, state.EditVisible)
		assert.False(t, state.Success)
		assert.Empty(t, state.Profile.Name)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Failed to update profile.", state.Notice.Message)
	})

	t.Run("Abandoned request makes no call", func(t *testing.T) {
		f := newFixture(t, Options{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := f.ctrl.SaveEdits(ctx, SaveRequest{Identity: identity, Name: "Jane"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

var jpeg = models.Image{Data: []byte{0xFF, 0xD8, 0xFF}, ContentType: "image/jpeg"}

func TestUploadPicture(t *testing.T) {
	t.Run("Permission denied makes no store call", func(t *testing.T) {
		f := newFixture(t, Options{})
		picker := media.Picker{Permission: media.Static(false), Source: media.Base64Source("/9j/")}

		err := f.ctrl.UploadPicture(context.Background(), UploadRequest{Identity: identity, Picker: picker})
		assert.ErrorIs(t, err, media.ErrPermissionDenied)

		state := f.ctrl.State()
		assert.False(t, state.Uploading)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Permission Required", state.Notice.Title)
	})

	t.Run("Canceled pick is a silent no-op", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.picker.EXPECT().Pick(gomock.Any()).Return(models.Image{}, media.ErrPickCanceled)

		assert.NoError(t, f.ctrl.UploadPicture(context.Background(), UploadRequest{Identity: identity, Picker: f.picker}))
		assert.Nil(t, f.ctrl.State().Notice)
	})

	t.Run("Successful upload persists the public address", func(t *testing.T) {
		f := newFixture(t, Options{})
		url := "https://avatars.s3.eu-west-1.amazonaws.com/user123.jpg"

		f.picker.EXPECT().Pick(gomock.Any()).Return(jpeg, nil)
		gomock.InOrder(
			f.blobs.EXPECT().UploadObject(gomock.Any(), "user123.jpg", jpeg.Data, "image/jpeg", true).
				DoAndReturn(func(ctx context.Context, key string, data []byte, contentType string, overwrite bool) error {
					assert.True(t, f.ctrl.State().Uploading, "Uploading flag should be set during the upload")
					return nil
				}),
			f.blobs.EXPECT().PublicURL("user123.jpg").Return(url),
			f.records.EXPECT().SetProfileImage(gomock.Any(), "user123", url).Return(nil),
		)

		require.NoError(t, f.ctrl.UploadPicture(context.Background(), UploadRequest{Identity: identity, Picker: f.picker}))

		state := f.ctrl.State()
		assert.Equal(t, url, state.Profile.ProfileImage)
		assert.False(t, state.Uploading)
		assert.True(t, state.Success)
	})

	t.Run("Re-upload overwrites the same key", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.picker.EXPECT().Pick(gomock.Any()).Return(jpeg, nil).Times(2)
		f.blobs.EXPECT().UploadObject(gomock.Any(), "user123.jpg", gomock.Any(), gomock.Any(), true).Return(nil).Times(2)
		f.blobs.EXPECT().PublicURL("user123.jpg").Return("https://img/user123.jpg").Times(2)
		f.records.EXPECT().SetProfileImage(gomock.Any(), "user123", "https://img/user123.jpg").Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			require.NoError(t, f.ctrl.UploadPicture(context.Background(), UploadRequest{Identity: identity, Picker: f.picker}))
		}
	})

	t.Run("Record write failure leaves the displayed image unchanged", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.records.EXPECT().GetUserProfile(gomock.Any(), "user123").Return(&models.UserProfile{ProfileImage: "https://img/old.jpg"}, nil)
		f.picker.EXPECT().Pick(gomock.Any()).Return(jpeg, nil)
		f.blobs.EXPECT().UploadObject(gomock.Any(), "user123.jpg", gomock.Any(), gomock.Any(), true).Return(nil)
		f.blobs.EXPECT().PublicURL("user123.jpg").Return("https://img/user123.jpg")
		f.records.EXPECT().SetProfileImage(gomock.Any(), "user123", "https://img/user123.jpg").Return(errors.New("conditional check failed"))

		require.NoError(t, f.ctrl.Load(context.Background(), LoadRequest{Identity: identity}))
		err := f.ctrl.UploadPicture(context.Background(), UploadRequest{Identity: identity, Picker: f.picker})
		assert.Error(t, err)

		state := f.ctrl.State()
		assert.False(t, state.Uploading)
		assert.Equal(t, "https://img/old.jpg", state.Profile.ProfileImage)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Upload Error", state.Notice.Title)
		assert.Equal(t, "The image was uploaded but could not be saved to your profile. Please try again.", state.Notice.Message)
	})

	t.Run("Blob failure never writes the record", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.picker.EXPECT().Pick(gomock.Any()).Return(jpeg, nil)
		f.blobs.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("access denied"))

		assert.Error(t, f.ctrl.UploadPicture(context.Background(), UploadRequest{Identity: identity, Picker: f.picker}))

		state := f.ctrl.State()
		assert.False(t, state.Uploading)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Failed to upload image. Please try again.", state.Notice.Message)
		assert.NotContains(t, state.Notice.Message, "access denied")
	})

	t.Run("Oversized image is reported as such", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.picker.EXPECT().Pick(gomock.Any()).Return(jpeg, nil)
		f.blobs.EXPECT().UploadObject(gomock.Any(), "user123.jpg", gomock.Any(), gomock.Any(), true).
			Return(fmt.Errorf("%w: 9000000 bytes", s3.ErrObjectTooLarge))

		err := f.ctrl.UploadPicture(context.Background(), UploadRequest{Identity: identity, Picker: f.picker})
		assert.ErrorIs(t, err, s3.ErrObjectTooLarge)

		state := f.ctrl.State()
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Upload Error", state.Notice.Title)
		assert.Equal(t, "The image is too large. Please choose a smaller one.", state.Notice.Message)
	})

	t.Run("Abandoned after upload stops before the record write", func(t *testing.T) {
		f := newFixture(t, Options{})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.picker.EXPECT().Pick(gomock.Any()).Return(jpeg, nil)
		f.blobs.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, []byte, string, bool) error {
				cancel()
				return nil
			})
		f.blobs.EXPECT().PublicURL("user123.jpg").Return("https://img/user123.jpg")

		err := f.ctrl.UploadPicture(ctx, UploadRequest{Identity: identity, Picker: f.picker})
		assert.ErrorIs(t, err, context.Canceled)

		state := f.ctrl.State()
		assert.False(t, state.Uploading)
		assert.Nil(t, state.Notice)
	})
}

func TestConfirmDelete(t *testing.T) {
	t.Run("Empty password makes no call", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.ctrl.OpenDeleteConfirm()

		err := f.ctrl.ConfirmDelete(context.Background(), DeleteRequest{Identity: identity})
		assert.ErrorIs(t, err, ErrEmptyPassword)

		state := f.ctrl.State()
		assert.True(t, state.DeleteVisible)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Enter your password.", state.Notice.Message)
	})

	t.Run("Incorrect password deletes nothing", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.identities.EXPECT().Reauthenticate(gomock.Any(), identity, "wrong").Return(auth.ErrInvalidCredentials)

		err := f.ctrl.ConfirmDelete(context.Background(), DeleteRequest{Identity: identity, Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

		state := f.ctrl.State()
		assert.Empty(t, state.Route)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Incorrect password.", state.Notice.Message)
	})

	outage := fmt.Errorf("%w: connection reset", auth.ErrAuthUnavailable)
	testCases := []struct {
		name            string
		distinguish     bool
		expectedMessage string
	}{
		{name: "Outage reported as incorrect password", distinguish: false, expectedMessage: "Incorrect password."},
		{name: "Outage reported as outage", distinguish: true, expectedMessage: "Could not verify your password. Please try again."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, Options{DistinguishAuthOutage: tc.distinguish})
			f.identities.EXPECT().Reauthenticate(gomock.Any(), identity, "hunter22").Return(outage)

			assert.Error(t, f.ctrl.ConfirmDelete(context.Background(), DeleteRequest{Identity: identity, Password: "hunter22"}))

			state := f.ctrl.State()
			require.NotNil(t, state.Notice)
			assert.Equal(t, tc.expectedMessage, state.Notice.Message)
		})
	}

	t.Run("Record is deleted before the identity", func(t *testing.T) {
		f := newFixture(t, Options{})
		gomock.InOrder(
			f.identities.EXPECT().Reauthenticate(gomock.Any(), identity, "hunter22").Return(nil),
			f.records.EXPECT().DeleteUserProfile(gomock.Any(), "user123").Return(nil),
			f.identities.EXPECT().DeleteIdentity(gomock.Any(), identity).Return(nil),
		)

		f.ctrl.OpenDeleteConfirm()
		require.NoError(t, f.ctrl.ConfirmDelete(context.Background(), DeleteRequest{Identity: identity, Password: "hunter22"}))

		state := f.ctrl.State()
		assert.Equal(t, RouteLogin, state.Route)
		assert.False(t, state.DeleteVisible)
		assert.Equal(t, models.UserProfile{}, state.Profile)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Account deleted.", state.Notice.Message)
	})

	t.Run("Record deletion failure keeps the identity", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.identities.EXPECT().Reauthenticate(gomock.Any(), identity, "hunter22").Return(nil)
		f.records.EXPECT().DeleteUserProfile(gomock.Any(), "user123").Return(errors.New("throttled"))

		assert.Error(t, f.ctrl.ConfirmDelete(context.Background(), DeleteRequest{Identity: identity, Password: "hunter22"}))
		assert.Empty(t, f.ctrl.State().Route)
	})

	t.Run("Identity deletion failure after the record is gone", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.records.EXPECT().GetUserProfile(gomock.Any(), "user123").Return(&models.UserProfile{Name: "John Doe"}, nil)
		gomock.InOrder(
			f.identities.EXPECT().Reauthenticate(gomock.Any(), identity, "hunter22").Return(nil),
			f.records.EXPECT().DeleteUserProfile(gomock.Any(), "user123").Return(nil),
			f.identities.EXPECT().DeleteIdentity(gomock.Any(), identity).Return(errors.New("throttled")),
		)

		require.NoError(t, f.ctrl.Load(context.Background(), LoadRequest{Identity: identity}))
		f.ctrl.OpenDeleteConfirm()
		assert.Error(t, f.ctrl.ConfirmDelete(context.Background(), DeleteRequest{Identity: identity, Password: "hunter22"}))

		state := f.ctrl.State()
		assert.Empty(t, state.Route)
		assert.True(t, state.DeleteVisible)
		assert.False(t, state.Success)
		assert.Equal(t, "John Doe", state.Profile.Name)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Failed to delete account.", state.Notice.Message)
	})

	t.Run("Abandoned after the record delete keeps the identity", func(t *testing.T) {
		f := newFixture(t, Options{})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.identities.EXPECT().Reauthenticate(gomock.Any(), identity, "hunter22").Return(nil)
		f.records.EXPECT().DeleteUserProfile(gomock.Any(), "user123").
			DoAndReturn(func(context.Context, string) error {
				cancel()
				return nil
			})
		f.identities.EXPECT().DeleteIdentity(gomock.Any(), gomock.Any()).Times(0)

		f.ctrl.OpenDeleteConfirm()
		err := f.ctrl.ConfirmDelete(ctx, DeleteRequest{Identity: identity, Password: "hunter22"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, f.ctrl.State().Route)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Success routes to login", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.identities.EXPECT().SignOut(gomock.Any(), identity).Return(nil)

		require.NoError(t, f.ctrl.Logout(context.Background(), LogoutRequest{Identity: identity}))
		assert.Equal(t, RouteLogin, f.ctrl.State().Route)
	})

	t.Run("Failure stays on the screen", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.identities.EXPECT().SignOut(gomock.Any(), identity).Return(errors.New("unreachable"))

		assert.Error(t, f.ctrl.Logout(context.Background(), LogoutRequest{Identity: identity}))

		state := f.ctrl.State()
		assert.Empty(t, state.Route)
		require.NotNil(t, state.Notice)
		assert.Equal(t, "Failed to logout.", state.Notice.Message)
	})
}

func TestModalsAreExclusive(t *testing.T) {
	f := newFixture(t, Options{})

	f.ctrl.OpenEditor()
	assert.True(t, f.ctrl.State().EditVisible)

	f.ctrl.OpenDeleteConfirm()
	state := f.ctrl.State()
	assert.True(t, state.DeleteVisible)
	assert.False(t, state.EditVisible)

	f.ctrl.OpenEditor()
	state = f.ctrl.State()
	assert.True(t, state.EditVisible)
	assert.False(t, state.DeleteVisible)

	f.ctrl.CloseEditor()
	f.ctrl.CloseDeleteConfirm()
	state = f.ctrl.State()
	assert.False(t, state.EditVisible)
	assert.False(t, state.DeleteVisible)
}

func TestImageKey(t *testing.T) {
	assert.Equal(t, "user123.jpg", ImageKey("user123"))
	assert.Equal(t, ImageKey("user123"), ImageKey("user123"))
}
