package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	subjectID string
	role      domain.Role
	err       error
}

func (f *fakeTokenVerifier) Verify(_ string) (string, domain.Role, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return f.subjectID, f.role, nil
}

// fakeResolver implements domain.AuthService; only Resolve matters here.
type fakeResolver struct {
	resolveErr error
}

func (f *fakeResolver) LoginPerson(ctx context.Context, dni, password string) (string, *domain.Person, error) {
	return "", nil, errors.New("not implemented")
}

func (f *fakeResolver) LoginAdmin(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	return "", nil, errors.New("not implemented")
}

func (f *fakeResolver) Resolve(ctx context.Context, subjectID string, role domain.Role) error {
	return f.resolveErr
}

func TestRequireRole(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name          string
		authHeader    string
		verifier      domain.TokenVerifier
		resolver      domain.AuthService
		roles         []domain.Role
		wantStatus    int
		wantBodyCode  string
		nextCalled    bool
		wantContextID string
	}{
		{
			name:          "valid admin token sets identity and calls next",
			authHeader:    "Bearer valid-token",
			verifier:      &fakeTokenVerifier{subjectID: "a-1", role: domain.RoleAdmin},
			resolver:      &fakeResolver{},
			roles:         []domain.Role{domain.RoleAdmin},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "a-1",
		},
		{
			name:          "no roles admits any authenticated caller",
			authHeader:    "Bearer valid-token",
			verifier:      &fakeTokenVerifier{subjectID: "p-1", role: domain.RolePerson},
			resolver:      &fakeResolver{},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "p-1",
		},
		{
			name:         "person token rejected on admin route",
			authHeader:   "Bearer valid-token",
			verifier:     &fakeTokenVerifier{subjectID: "p-1", role: domain.RolePerson},
			resolver:     &fakeResolver{},
			roles:        []domain.Role{domain.RoleAdmin},
			wantStatus:   http.StatusForbidden,
			wantBodyCode: helpers.ErrCodeForbidden,
		},
		{
			name:         "missing authorization header",
			authHeader:   "",
			verifier:     &fakeTokenVerifier{subjectID: "a-1", role: domain.RoleAdmin},
			resolver:     &fakeResolver{},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "invalid authorization format no Bearer prefix",
			authHeader:   "Basic abc",
			verifier:     &fakeTokenVerifier{subjectID: "a-1", role: domain.RoleAdmin},
			resolver:     &fakeResolver{},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "empty token after Bearer",
			authHeader:   "Bearer ",
			verifier:     &fakeTokenVerifier{subjectID: "a-1", role: domain.RoleAdmin},
			resolver:     &fakeResolver{},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "verifier returns error",
			authHeader:   "Bearer bad-token",
			verifier:     &fakeTokenVerifier{err: errors.New("invalid or expired token")},
			resolver:     &fakeResolver{},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "subject no longer exists",
			authHeader:   "Bearer valid-token",
			verifier:     &fakeTokenVerifier{subjectID: "p-deleted", role: domain.RolePerson},
			resolver:     &fakeResolver{resolveErr: domain.ErrNotFound},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var captured Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if id, ok := IdentityFromContext(r.Context()); ok {
					captured = id
				}
				w.WriteHeader(http.StatusOK)
			})
			wrap := RequireRole(tt.verifier, tt.resolver, logger, tt.roles...)
			handler := wrap(next)

			req := httptest.NewRequest(http.MethodGet, "http://test/events", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.nextCalled && tt.wantContextID != "" {
				assert.Equal(t, tt.wantContextID, captured.ID, "identity in context")
			}
			if tt.wantStatus != http.StatusOK && tt.wantBodyCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}
