package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"laundry-service/internal/data/entity"
	"laundry-service/internal/dto/request"
	"laundry-service/internal/dto/response"
	"laundry-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, identity *utils.Identity) {
	m.Called(ctx, identity)
}

func (m *MockAuthService) CreateAdmin(ctx context.Context, req *request.CreateAdminRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func testCodec() *utils.SessionCodec {
	return utils.NewSessionCodec(utils.SessionConfig{Secret: "test", TTLHours: 1}, false)
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAuthHandler_Login(t *testing.T) {
	codec := testCodec()

	t.Run("issues session and lands admin on dashboard", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, &request.LoginRequest{Email: "root@x.io", Password: "secret1"}).
			Return(&response.AuthResponse{UserID: 1, Email: "root@x.io", Role: entity.RoleAdmin, Landing: "/admin"}, nil)

		rec := httptest.NewRecorder()
		NewAuthHandler(svc, codec, "laundry", zap.NewNop()).
			Login(rec, postForm("/login", url.Values{"email": {"root@x.io"}, "password": {"secret1"}}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/admin", decodeBody(t, rec).Redirect)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		identity, err := codec.Decode(cookies[0].Value)
		require.NoError(t, err)
		assert.Equal(t, int64(1), identity.UserID)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("bad credentials set no cookie", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, mock.Anything).
			Return(nil, utils.NewError(utils.ErrAuth, "Invalid email or password."))

		rec := httptest.NewRecorder()
		NewAuthHandler(svc, codec, "laundry", zap.NewNop()).
			Login(rec, postForm("/login", url.Values{"email": {"a@x.io"}, "password": {"nope"}}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid email or password.", decodeBody(t, rec).Message)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Register", mock.Anything, mock.MatchedBy(func(r *request.RegisterRequest) bool {
		return r.Email == "a@x.io" && r.ConfirmPassword == "secret1"
	})).Return(nil, utils.NewError(utils.ErrConflict, "Username or Email already exists."))

	form := url.Values{}
	form.Set("username", "jdoe")
	form.Set("password", "secret1")
	form.Set("confirm_password", "secret1")
	form.Set("email", "a@x.io")

	rec := httptest.NewRecorder()
	NewAuthHandler(svc, testCodec(), "laundry", zap.NewNop()).Register(rec, postForm("/register", form))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Username or Email already exists.", decodeBody(t, rec).Message)
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Logout", mock.Anything, (*utils.Identity)(nil)).Return()

	rec := httptest.NewRecorder()
	NewAuthHandler(svc, testCodec(), "laundry", zap.NewNop()).
		Logout(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, utils.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	svc.AssertExpectations(t)
}
