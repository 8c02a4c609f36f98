package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// fakeCompetitorService implements domain.CompetitorService for handler tests.
type fakeCompetitorService struct {
	enrollErr             error
	enrollResult          *domain.Competitor
	lastEnrollCompetition string
	lastEnrollPerson      string

	getErr    error
	getResult *domain.Competitor

	listErr    error
	listResult []*domain.Competitor
	listTotal  int

	withdrawErr        error
	withdrawResult     *domain.Competitor
	lastWithdrawID     string
	lastWithdrawCaller string
	lastWithdrawRole   domain.Role
}

func (f *fakeCompetitorService) Enroll(ctx context.Context, competitionID, personID string) (*domain.Competitor, error) {
	f.lastEnrollCompetition = competitionID
	f.lastEnrollPerson = personID
	if f.enrollErr != nil {
		return nil, f.enrollErr
	}
	if f.enrollResult != nil {
		return f.enrollResult, nil
	}
	return &domain.Competitor{ID: "cr-created", CompetitionID: competitionID, PersonID: personID, EnrolledAt: time.Now()}, nil
}

func (f *fakeCompetitorService) GetByID(ctx context.Context, id string) (*domain.Competitor, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeCompetitorService) List(ctx context.Context, filter domain.CompetitorFilter, params domain.PaginationParams) ([]*domain.Competitor, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listResult, f.listTotal, nil
}

func (f *fakeCompetitorService) Withdraw(ctx context.Context, id, callerID string, callerRole domain.Role) (*domain.Competitor, error) {
	f.lastWithdrawID = id
	f.lastWithdrawCaller = callerID
	f.lastWithdrawRole = callerRole
	if f.withdrawErr != nil {
		return nil, f.withdrawErr
	}
	return f.withdrawResult, nil
}

func enrollRequest(body string, identity *middleware.Identity) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/competitors", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if identity != nil {
		req = req.WithContext(middleware.SetIdentity(req.Context(), *identity))
	}
	return req
}

func TestCompetitorController_Enroll(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		identity       *middleware.Identity
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		wantPersonID   string
	}{
		{
			name:         "person enrolls themselves",
			body:         `{"competition_id":"comp-1"}`,
			identity:     &middleware.Identity{ID: "p-1", Role: domain.RolePerson},
			wantStatus:   http.StatusCreated,
			wantPersonID: "p-1",
		},
		{
			name:         "admin enrolls another person",
			body:         `{"competition_id":"comp-1","person_id":"p-9"}`,
			identity:     &middleware.Identity{ID: "a-1", Role: domain.RoleAdmin},
			wantStatus:   http.StatusCreated,
			wantPersonID: "p-9",
		},
		{
			name:           "admin without person_id",
			body:           `{"competition_id":"comp-1"}`,
			identity:       &middleware.Identity{ID: "a-1", Role: domain.RoleAdmin},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "person_id is required",
		},
		{
			name:           "no identity in context",
			body:           `{"competition_id":"comp-1"}`,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "missing competition_id",
			body:           `{}`,
			identity:       &middleware.Identity{ID: "p-1", Role: domain.RolePerson},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "competition_id is required",
		},
		{
			name:           "enrollment closed",
			body:           `{"competition_id":"comp-1"}`,
			identity:       &middleware.Identity{ID: "p-1", Role: domain.RolePerson},
			fakeErr:        domain.ErrEnrollmentClosed,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "enrollment is closed",
		},
		{
			name:           "already enrolled",
			body:           `{"competition_id":"comp-1"}`,
			identity:       &middleware.Identity{ID: "p-1", Role: domain.RolePerson},
			fakeErr:        domain.ErrAlreadyEnrolled,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "already enrolled",
		},
		{
			name:           "competition not found",
			body:           `{"competition_id":"missing"}`,
			identity:       &middleware.Identity{ID: "p-1", Role: domain.RolePerson},
			fakeErr:        domain.ErrCompetitionNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompetitorService{enrollErr: tt.fakeErr}
			ctrl := NewCompetitorController(testLogger, fake)
			rr := httptest.NewRecorder()

			ctrl.Enroll(rr, enrollRequest(tt.body, tt.identity))

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				assert.Equal(t, tt.wantPersonID, fake.lastEnrollPerson, "enrolled person")
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
		})
	}
}

func TestCompetitorController_Withdraw(t *testing.T) {
	withdrawn := &domain.Competitor{ID: "cr-1", PersonID: "p-1", CompetitionID: "comp-1"}

	t.Run("caller identity forwarded", func(t *testing.T) {
		fake := &fakeCompetitorService{withdrawResult: withdrawn}
		ctrl := NewCompetitorController(testLogger, fake)
		req := httptest.NewRequest(http.MethodDelete, "/competitors/cr-1", nil)
		req.SetPathValue("competitorID", "cr-1")
		req = req.WithContext(middleware.SetIdentity(req.Context(), middleware.Identity{ID: "p-1", Role: domain.RolePerson}))
		rr := httptest.NewRecorder()

		ctrl.Withdraw(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "cr-1", fake.lastWithdrawID)
		assert.Equal(t, "p-1", fake.lastWithdrawCaller)
		assert.Equal(t, domain.RolePerson, fake.lastWithdrawRole)
	})

	t.Run("forbidden for another person", func(t *testing.T) {
		fake := &fakeCompetitorService{withdrawErr: domain.ErrForbidden}
		ctrl := NewCompetitorController(testLogger, fake)
		req := httptest.NewRequest(http.MethodDelete, "/competitors/cr-1", nil)
		req.SetPathValue("competitorID", "cr-1")
		req = req.WithContext(middleware.SetIdentity(req.Context(), middleware.Identity{ID: "p-2", Role: domain.RolePerson}))
		rr := httptest.NewRecorder()

		ctrl.Withdraw(rr, req)

		require.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unauthorized without identity", func(t *testing.T) {
		ctrl := NewCompetitorController(testLogger, &fakeCompetitorService{})
		req := httptest.NewRequest(http.MethodDelete, "/competitors/cr-1", nil)
		req.SetPathValue("competitorID", "cr-1")
		rr := httptest.NewRecorder()

		ctrl.Withdraw(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
