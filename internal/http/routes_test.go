package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/seekwell/jobboard/internal/adapters/memstore"
	"github.com/seekwell/jobboard/internal/domain/model"
	"github.com/seekwell/jobboard/internal/mocks"
	"github.com/seekwell/jobboard/internal/service"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockListingRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUserRepository(ctrl)
	listings := mocks.NewMockListingRepository(ctrl)
	applications := mocks.NewMockApplicationRepository(ctrl)

	// Routes under test never touch the user repo.
	users.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Times(0)

	router, err := NewRouter(RouterServices{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Users:      users,
			Sessions:   memstore.NewSessionStore(),
			SessionTTL: time.Hour,
			BcryptCost: bcrypt.MinCost,
		}),
		Listings: service.NewListingService(service.ListingServiceOptions{Listings: listings}),
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{
			Applications: applications,
			Listings:     listings,
		}),
	})
	require.NoError(t, err)
	return router, listings
}

func TestRouter_RootRedirectsToListings(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/listings", w.Header().Get("Location"))
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_UnknownPathRenders404Page(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}

func TestRouter_ListingsPublic(t *testing.T) {
	router, listings := newTestRouter(t)

	listings.EXPECT().
		List(gomock.Any()).
		Return([]*model.Listing{}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No job listings have been posted yet.")
}

func TestRouter_NewListingRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/listings/new", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login?redirect_uri=")
}

func TestRouter_PostWithoutCSRFTokenRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_LoginPageRenders(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ContainsAll(w.Body.String(), []string{"Sign In", "username", "password"}))
}
