package models

type UserProfile struct {
	UserID       string `json:"userId" dynamodbav:"UserId"`
	Name         string `json:"name" dynamodbav:"Name"`
	Email        string `json:"email" dynamodbav:"Email"`
	Phone        string `json:"phone" dynamodbav:"Phone"`
	Pseudo       string `json:"pseudo" dynamodbav:"Pseudo"`
	ProfileImage string `json:"profileImage" dynamodbav:"ProfileImage"`
	UpdatedAt    string `json:"updatedAt,omitempty" dynamodbav:"UpdatedAt"`
}

// ProfileUpdate is the subset of a profile a user may edit directly.
// Nil fields are left untouched by the store.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Pseudo *string `json:"pseudo,omitempty"`
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Pseudo == nil
}

// Identity is the authenticated principal behind a request.
type Identity struct {
	UserID    string
	Email     string
	SessionID string
}

type Account struct {
	UserID       string `dynamodbav:"UserId"`
	Email        string `dynamodbav:"Email"`
	PasswordHash string `dynamodbav:"PasswordHash"`
}

type Session struct {
	SessionID string `dynamodbav:"SessionId"`
	UserID    string `dynamodbav:"UserId"`
	ExpiresAt int64  `dynamodbav:"ExpiresAt"`
}

type Image struct {
	Data        []byte
	ContentType string
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type EditRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Pseudo string `json:"pseudo"`
}

type DeleteRequest struct {
	Password string `json:"password"`
}

type PictureRequest struct {
	PermissionGranted bool   `json:"permissionGranted"`
	Image             string `json:"image,omitempty"`
}

type Notice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ScreenResponse is the screen state after an action completes.
type ScreenResponse struct {
	Profile       UserProfile `json:"profile"`
	Uploading     bool        `json:"uploading"`
	EditVisible   bool        `json:"editVisible"`
	DeleteVisible bool        `json:"deleteVisible"`
	Notice        *Notice     `json:"notice,omitempty"`
	Route         string      `json:"route,omitempty"`
	Success       bool        `json:"success"`
}
