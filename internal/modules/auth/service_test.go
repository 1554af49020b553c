package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guesthub/internal/domain"
	jwtpkg "guesthub/internal/pkg/jwt"
	"guesthub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepo)
	tokens := jwtpkg.New("secret", time.Hour)
	svc := NewService(repo, tokens)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "jane@example.com" && u.Role == domain.RoleGuest &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 7
	}).Return(nil)

	res, err := svc.Register(context.Background(), RegisterRequest{
		Email: " Jane@Example.com ", Password: "secret1", Name: "Jane", Role: "guest",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.UserID)
	assert.Equal(t, "guest", res.Role)

	claims, err := tokens.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	repo.AssertExpectations(t)
}

func TestRegister_Errors(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, jwtpkg.New("secret", time.Hour))

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.co", Password: "secret1", Name: "A", Role: "owner"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)
	_, err = svc.Register(context.Background(), RegisterRequest{Email: "a@b.co", Password: "secret1", Name: "A", Role: "staff"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, jwtpkg.New("secret", time.Hour))

	user := &domain.User{ID: 3, Email: "sam@guesthub.test", Name: "Sam", Role: domain.RoleStaff, PasswordHash: hashed(t, "right-pw")}
	repo.On("GetByEmail", mock.Anything, "sam@guesthub.test").Return(user, nil)
	repo.On("GetByEmail", mock.Anything, "ghost@guesthub.test").Return(nil, repository.ErrNotFound)

	res, err := svc.Login(context.Background(), LoginRequest{Email: "SAM@guesthub.test", Password: "right-pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.UserID)
	assert.Equal(t, "staff", res.Role)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "sam@guesthub.test", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "ghost@guesthub.test", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, jwtpkg.New("secret", time.Hour))
	boom := errors.New("db down")
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "x"})
	assert.ErrorIs(t, err, boom)
}

func newRouter(svc *Service, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	h := NewHandler(svc)
	h.RegisterPublicRoutes(api)
	protected := api.Group("")
	protected.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	h.RegisterProtectedRoutes(protected)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error.Code
}

func TestHandler_Register(t *testing.T) {
	repo := new(mockUserRepo)
	r := newRouter(NewService(repo, jwtpkg.New("secret", time.Hour)), 0)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.Email == "new@guesthub.test" })).
		Return(nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.Email == "taken@guesthub.test" })).
		Return(repository.ErrDuplicateEmail).Once()

	w := doJSON(r, http.MethodPost, "/api/auth/register", RegisterRequest{Email: "new@guesthub.test", Password: "secret1", Name: "New", Role: "guest"})
	assert.Equal(t, http.StatusOK, w.Code)
	var ok struct {
		Data AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	assert.NotEmpty(t, ok.Data.Token)
	assert.Equal(t, "new@guesthub.test", ok.Data.Email)

	w = doJSON(r, http.MethodPost, "/api/auth/register", RegisterRequest{Email: "taken@guesthub.test", Password: "secret1", Name: "T", Role: "guest"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_EXISTS", errorCode(t, w))

	w = doJSON(r, http.MethodPost, "/api/auth/register", map[string]string{"email": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	w = doJSON(r, http.MethodPost, "/api/auth/register", RegisterRequest{Email: "x@guesthub.test", Password: "secret1", Name: "X", Role: "owner"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ROLE", errorCode(t, w))
}

func TestHandler_LoginAndMe(t *testing.T) {
	repo := new(mockUserRepo)
	r := newRouter(NewService(repo, jwtpkg.New("secret", time.Hour)), 3)

	user := &domain.User{ID: 3, Email: "sam@guesthub.test", Name: "Sam", Role: domain.RoleStaff, PasswordHash: hashed(t, "right-pw")}
	repo.On("GetByEmail", mock.Anything, "sam@guesthub.test").Return(user, nil)
	repo.On("GetByID", mock.Anything, int64(3)).Return(user, nil)

	w := doJSON(r, http.MethodPost, "/api/auth/login", LoginRequest{Email: "sam@guesthub.test", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))

	w = doJSON(r, http.MethodPost, "/api/auth/login", LoginRequest{Email: "sam@guesthub.test", Password: "right-pw"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Data UserPublic `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "Sam", me.Data.Name)
	assert.Equal(t, "staff", me.Data.Role)
}
