package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

type validatorFunc func(ctx context.Context, token string) (*domain.Identity, error)

func (f validatorFunc) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	return f(ctx, token)
}

type mirrorFunc func(ctx context.Context, identity domain.Identity) (*domain.User, error)

func (f mirrorFunc) Mirror(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	return f(ctx, identity)
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func authTestRouter(t *testing.T, validator TokenValidator, mirror UserMirror, extra ...ginext.HandlerFunc) http.Handler {
	t.Helper()

	r := ginext.New("test")
	handlers := append([]ginext.HandlerFunc{Auth(validator, mirror, newTestLogger(t))}, extra...)
	handlers = append(handlers, func(c *ginext.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, ginext.H{"username": user.Username})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	validator := validatorFunc(func(ctx context.Context, token string) (*domain.Identity, error) {
		assert.Equal(t, "tok-123", token)
		return &domain.Identity{Email: "alice@example.com", Username: "alice"}, nil
	})
	mirror := mirrorFunc(func(ctx context.Context, identity domain.Identity) (*domain.User, error) {
		return &domain.User{ID: "u1", Username: identity.Username, Role: domain.RoleParticipant}, nil
	})

	r := authTestRouter(t, validator, mirror)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestAuth_MissingHeader(t *testing.T) {
	validator := validatorFunc(func(ctx context.Context, token string) (*domain.Identity, error) {
		t.Fatal("validator must not be called without a token")
		return nil, nil
	})
	mirror := mirrorFunc(func(ctx context.Context, identity domain.Identity) (*domain.User, error) {
		return nil, nil
	})

	r := authTestRouter(t, validator, mirror)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	validator := validatorFunc(func(ctx context.Context, token string) (*domain.Identity, error) {
		t.Fatal("validator must not be called for a malformed header")
		return nil, nil
	})
	mirror := mirrorFunc(func(ctx context.Context, identity domain.Identity) (*domain.User, error) {
		return nil, nil
	})

	r := authTestRouter(t, validator, mirror)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token tok-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RejectedToken(t *testing.T) {
	validator := validatorFunc(func(ctx context.Context, token string) (*domain.Identity, error) {
		return nil, domain.ErrUnauthorized
	})
	mirror := mirrorFunc(func(ctx context.Context, identity domain.Identity) (*domain.User, error) {
		return nil, nil
	})

	r := authTestRouter(t, validator, mirror)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MirrorFailure(t *testing.T) {
	validator := validatorFunc(func(ctx context.Context, token string) (*domain.Identity, error) {
		return &domain.Identity{Email: "alice@example.com", Username: "alice"}, nil
	})
	mirror := mirrorFunc(func(ctx context.Context, identity domain.Identity) (*domain.User, error) {
		return nil, errors.New("db error")
	})

	r := authTestRouter(t, validator, mirror)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireOrganizer_AllowsOrganizer(t *testing.T) {
	validator := validatorFunc(func(ctx context.Context, token string) (*domain.Identity, error) {
		return &domain.Identity{Email: "org@example.com", Username: "org"}, nil
	})
	mirror := mirrorFunc(func(ctx context.Context, identity domain.Identity) (*domain.User, error) {
		return &domain.User{ID: "u2", Username: identity.Username, Role: domain.RoleOrganizer}, nil
	})

	r := authTestRouter(t, validator, mirror, RequireOrganizer())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireOrganizer_RejectsParticipant(t *testing.T) {
	validator := validatorFunc(func(ctx context.Context, token string) (*domain.Identity, error) {
		return &domain.Identity{Email: "alice@example.com", Username: "alice"}, nil
	})
	mirror := mirrorFunc(func(ctx context.Context, identity domain.Identity) (*domain.User, error) {
		return &domain.User{ID: "u1", Username: identity.Username, Role: domain.RoleParticipant}, nil
	})

	r := authTestRouter(t, validator, mirror, RequireOrganizer())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireOrganizer_WithoutAuth(t *testing.T) {
	r := ginext.New("test")
	r.GET("/organizer-only", RequireOrganizer(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/organizer-only", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
