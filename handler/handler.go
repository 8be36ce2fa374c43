package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ShareFrame/profile-screen-service/auth"
	"github.com/ShareFrame/profile-screen-service/media"
	"github.com/ShareFrame/profile-screen-service/models"
	"github.com/ShareFrame/profile-screen-service/profile"
	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

var phoneRegex = regexp.MustCompile(`^[0-9 +().-]*$`)

type Authenticator interface {
	profile.Identities
	SignIn(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (models.Identity, error)
}

type Handler struct {
	Auth    Authenticator
	Records profile.RecordStore
	Blobs   profile.BlobStore
	Options profile.Options
}

func New(authenticator Authenticator, records profile.RecordStore, blobs profile.BlobStore, opts profile.Options) *Handler {
	return &Handler{Auth: authenticator, Records: records, Blobs: blobs, Options: opts}
}

type route func(ctx context.Context, identity models.Identity, body string) events.APIGatewayProxyResponse

func (h *Handler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	path := strings.TrimRight(request.Path, "/")
	logrus.WithFields(logrus.Fields{
		"method": request.HTTPMethod,
		"path":   path,
	}).Info("Processing profile screen request")

	if request.HTTPMethod == http.MethodPost && path == "/login" {
		return h.login(ctx, request.Body), nil
	}

	routes := map[string]route{
		http.MethodGet + " /profile":         h.load,
		http.MethodPatch + " /profile":       h.save,
		http.MethodPut + " /profile/picture": h.upload,
		http.MethodDelete + " /profile":      h.deleteAccount,
		http.MethodPost + " /logout":         h.logout,
	}

	handle, ok := routes[request.HTTPMethod+" "+path]
	if !ok {
		return jsonResponse(http.StatusNotFound, map[string]string{"error": "route not found"}), nil
	}

	token, ok := bearerToken(request.Headers)
	if !ok {
		return jsonResponse(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"}), nil
	}

	identity, err := h.Auth.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return jsonResponse(http.StatusUnauthorized, map[string]string{"error": "invalid session"}), nil
		}
		logrus.WithError(err).Error("Failed to authenticate request")
		return jsonResponse(http.StatusServiceUnavailable, map[string]string{"error": "authentication unavailable"}), nil
	}

	return handle(ctx, identity, request.Body), nil
}

func (h *Handler) controller() *profile.Controller {
	return profile.NewController(h.Records, h.Blobs, h.Auth, h.Options)
}

func (h *Handler) login(ctx context.Context, body string) events.APIGatewayProxyResponse {
	var req models.LoginRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil || req.Email == "" || req.Password == "" {
		return jsonResponse(http.StatusBadRequest, models.LoginResponse{Message: "Email and password are required"})
	}

	token, err := h.Auth.SignIn(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logrus.WithField("email", req.Email).Warn("Sign in rejected")
			return jsonResponse(http.StatusUnauthorized, models.LoginResponse{Message: "Invalid email or password"})
		}
		logrus.WithError(err).Error("Failed to sign in")
		return jsonResponse(http.StatusInternalServerError, models.LoginResponse{Message: "Internal server error"})
	}

	return jsonResponse(http.StatusOK, models.LoginResponse{Token: token, Message: "Signed in", Success: true})
}

func (h *Handler) load(ctx context.Context, identity models.Identity, _ string) events.APIGatewayProxyResponse {
	c := h.controller()
	_ = c.Load(ctx, profile.LoadRequest{Identity: identity})
	return jsonResponse(http.StatusOK, c.State())
}

func (h *Handler) save(ctx context.Context, identity models.Identity, body string) events.APIGatewayProxyResponse {
	var req models.EditRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return jsonResponse(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	c := h.controller()
	_ = c.Load(ctx, profile.LoadRequest{Identity: identity})
	c.OpenEditor()

	if err := validateEdit(req); err != nil {
		logrus.WithError(err).Warn("Profile edit validation failed")
		state := c.State()
		state.Notice = &models.Notice{Title: "Error", Message: err.Error()}
		state.Success = false
		return jsonResponse(http.StatusBadRequest, state)
	}

	_ = c.SaveEdits(ctx, profile.SaveRequest{
		Identity: identity,
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Pseudo:   strings.TrimSpace(req.Pseudo),
	})
	return jsonResponse(http.StatusOK, c.State())
}

func (h *Handler) upload(ctx context.Context, identity models.Identity, body string) events.APIGatewayProxyResponse {
	var req models.PictureRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return jsonResponse(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	c := h.controller()
	_ = c.Load(ctx, profile.LoadRequest{Identity: identity})

	picker := media.Picker{
		Permission: media.Static(req.PermissionGranted),
		Source:     media.Base64Source(req.Image),
	}
	_ = c.UploadPicture(ctx, profile.UploadRequest{Identity: identity, Picker: picker})
	return jsonResponse(http.StatusOK, c.State())
}

func (h *Handler) deleteAccount(ctx context.Context, identity models.Identity, body string) events.APIGatewayProxyResponse {
	var req models.DeleteRequest
	if body != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return jsonResponse(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
	}

	c := h.controller()
	_ = c.Load(ctx, profile.LoadRequest{Identity: identity})
	c.OpenDeleteConfirm()
	_ = c.ConfirmDelete(ctx, profile.DeleteRequest{Identity: identity, Password: req.Password})
	return jsonResponse(http.StatusOK, c.State())
}

func (h *Handler) logout(ctx context.Context, identity models.Identity, _ string) events.APIGatewayProxyResponse {
	c := h.controller()
	_ = c.Load(ctx, profile.LoadRequest{Identity: identity})
	_ = c.Logout(ctx, profile.LogoutRequest{Identity: identity})
	return jsonResponse(http.StatusOK, c.State())
}

func validateEdit(req models.EditRequest) error {
	var validationErrors []string

	validations := []struct {
		errMsg string
		check  func() bool
	}{
		{"name must be 100 characters or fewer", func() bool { return utf8.RuneCountInString(req.Name) > 100 }},
		{"pseudo must be 50 characters or fewer", func() bool { return utf8.RuneCountInString(req.Pseudo) > 50 }},
		{"phone must be 20 characters or fewer", func() bool { return len(req.Phone) > 20 }},
		{"phone may only contain digits, spaces and + ( ) . -", func() bool { return !phoneRegex.MatchString(req.Phone) }},
	}

	for _, v := range validations {
		if v.check() {
			validationErrors = append(validationErrors, v.errMsg)
		}
	}

	if len(validationErrors) > 0 {
		return errors.New("profile validation failed: " + strings.Join(validationErrors, "; "))
	}
	return nil
}

func bearerToken(headers map[string]string) (string, bool) {
	for k, v := range headers {
		if strings.EqualFold(k, "Authorization") && strings.HasPrefix(v, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(v, "Bearer "))
			return token, token != ""
		}
	}
	return "", false
}

func jsonResponse(status int, body interface{}) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal response")
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}
