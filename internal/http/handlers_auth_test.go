package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/seekwell/jobboard/internal/adapters/memstore"
	"github.com/seekwell/jobboard/internal/data"
	domainauth "github.com/seekwell/jobboard/internal/domain/auth"
	"github.com/seekwell/jobboard/internal/domain/model"
	"github.com/seekwell/jobboard/internal/mocks"
	"github.com/seekwell/jobboard/internal/service"
)

func newAuthHandlers(t *testing.T) (*mocks.MockUserRepository, *AuthHandlers) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(service.AuthServiceOptions{
		Users:      users,
		Sessions:   memstore.NewSessionStore(),
		SessionTTL: time.Hour,
		BcryptCost: bcrypt.MinCost, // keep the tests fast
	})

	return users, &AuthHandlers{Svc: svc, T: RequireTemplateRenderer(t)}
}

func hashedUser(t *testing.T, username, password string, role domainauth.Role) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           "user-1",
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Login_Success(t *testing.T) {
	users, h := newAuthHandlers(t)

	users.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(hashedUser(t, "alice", "s3cret", domainauth.RoleUser), nil).
		Times(1)

	form := url.Values{"username": {"alice"}, "password": {"s3cret"}}
	w := httptest.NewRecorder()
	h.Login(w, postForm("/login", form))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/listings", w.Header().Get("Location"))

	cookie := sessionCookieFrom(t, w)
	require.NotNil(t, cookie, "session cookie must be set")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandlers_Login_SecureCookieWhenConfigured(t *testing.T) {
	users, h := newAuthHandlers(t)
	h.CookieSecure = true

	users.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(hashedUser(t, "alice", "s3cret", domainauth.RoleUser), nil).
		Times(1)

	// Plain HTTP request; the configured flag alone must mark the cookie Secure.
	form := url.Values{"username": {"alice"}, "password": {"s3cret"}}
	w := httptest.NewRecorder()
	h.Login(w, postForm("/login", form))

	cookie := sessionCookieFrom(t, w)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestAuthHandlers_Login_PreservesRedirectURI(t *testing.T) {
	users, h := newAuthHandlers(t)

	users.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(hashedUser(t, "alice", "s3cret", domainauth.RoleUser), nil).
		Times(1)

	form := url.Values{
		"username":     {"alice"},
		"password":     {"s3cret"},
		"redirect_uri": {"/listings/new"},
	}
	w := httptest.NewRecorder()
	h.Login(w, postForm("/login", form))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/listings/new", w.Header().Get("Location"))
}

func TestAuthHandlers_Login_BadCredentials(t *testing.T) {
	users, h := newAuthHandlers(t)

	users.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(hashedUser(t, "alice", "s3cret", domainauth.RoleUser), nil).
		Times(1)

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	w := httptest.NewRecorder()
	h.Login(w, postForm("/login", form))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")
	assert.Nil(t, sessionCookieFrom(t, w), "no session cookie on failed login")
}

func TestAuthHandlers_Login_UnknownUserSameMessage(t *testing.T) {
	users, h := newAuthHandlers(t)

	users.EXPECT().
		GetByUsername(gomock.Any(), "nobody").
		Return(nil, data.ErrUserNotFound).
		Times(1)

	form := url.Values{"username": {"nobody"}, "password": {"whatever"}}
	w := httptest.NewRecorder()
	h.Login(w, postForm("/login", form))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")
}

func TestAuthHandlers_Register_Success(t *testing.T) {
	users, h := newAuthHandlers(t)

	var created *model.User
	users.EXPECT().
		GetByUsername(gomock.Any(), "bob").
		Return(nil, data.ErrUserNotFound).
		Times(1)
	users.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *model.RegisterRequest, hash []byte) (*model.User, error) {
			created = &model.User{
				ID:           "user-2",
				Username:     req.Username,
				PasswordHash: hash,
				Role:         domainauth.RoleUser,
			}
			return created, nil
		}).
		Times(1)
	// The post-registration sign-in looks the account up again.
	users.EXPECT().
		GetByUsername(gomock.Any(), "bob").
		DoAndReturn(func(_ any, _ string) (*model.User, error) {
			return created, nil
		}).
		Times(1)

	form := url.Values{
		"username":         {"bob"},
		"password":         {"hunter2"},
		"confirm_password": {"hunter2"},
	}
	w := httptest.NewRecorder()
	h.Register(w, postForm("/register", form))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/listings", w.Header().Get("Location"))
	require.NotNil(t, sessionCookieFrom(t, w), "registration signs the user in")
}

func TestAuthHandlers_Register_DuplicateUsername(t *testing.T) {
	users, h := newAuthHandlers(t)

	users.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(hashedUser(t, "alice", "other", domainauth.RoleUser), nil).
		Times(1)

	form := url.Values{
		"username":         {"alice"},
		"password":         {"hunter2"},
		"confirm_password": {"hunter2"},
	}
	w := httptest.NewRecorder()
	h.Register(w, postForm("/register", form))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "This username is already taken. Please choose a different one.")
}

func TestAuthHandlers_Register_MissingFields(t *testing.T) {
	_, h := newAuthHandlers(t)

	form := url.Values{"username": {""}, "password": {""}}
	w := httptest.NewRecorder()
	h.Register(w, postForm("/register", form))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.True(t, ContainsAll(w.Body.String(), []string{
		"Username is required.",
		"Password is required.",
	}), "both field errors rendered")
}

func TestAuthHandlers_Register_PasswordMismatch(t *testing.T) {
	_, h := newAuthHandlers(t)

	form := url.Values{
		"username":         {"bob"},
		"password":         {"hunter2"},
		"confirm_password": {"hunter3"},
	}
	w := httptest.NewRecorder()
	h.Register(w, postForm("/register", form))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match.")
	assert.Nil(t, sessionCookieFrom(t, w), "no session on mismatched passwords")
}

func TestAuthHandlers_Logout_ClearsCookie(t *testing.T) {
	users, h := newAuthHandlers(t)

	// Establish a session first.
	users.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(hashedUser(t, "alice", "s3cret", domainauth.RoleUser), nil).
		Times(1)

	loginW := httptest.NewRecorder()
	h.Login(loginW, postForm("/login", url.Values{"username": {"alice"}, "password": {"s3cret"}}))
	cookie := sessionCookieFrom(t, loginW)
	require.NotNil(t, cookie)

	req := postForm("/logout", url.Values{})
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	h.Logout(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cleared := sessionCookieFrom(t, w)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
