package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestCompetitorRepository_Create(t *testing.T) {
	ctx := context.Background()
	enrolled := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		competitor *domain.Competitor
		mock       func(mock sqlmock.Sqlmock)
		wantID     string
		wantErr    error
	}{
		{
			name: "success",
			competitor: &domain.Competitor{
				PersonID:      "p-1",
				CompetitionID: "comp-1",
				EnrolledAt:    enrolled,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO competitors \(person_id, competition_id, enrolled_at\)`).
					WithArgs("p-1", "comp-1", enrolled).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ct-uuid-1"))
			},
			wantID: "ct-uuid-1",
		},
		{
			name: "already enrolled",
			competitor: &domain.Competitor{
				PersonID:      "p-1",
				CompetitionID: "comp-1",
				EnrolledAt:    enrolled,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO competitors`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "competitors_competition_person_key"})
			},
			wantErr: domain.ErrAlreadyEnrolled,
		},
		{
			name: "competition vanished",
			competitor: &domain.Competitor{
				PersonID:      "p-1",
				CompetitionID: "comp-gone",
				EnrolledAt:    enrolled,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO competitors`).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "competitors_competition_id_fkey"})
			},
			wantErr: domain.ErrCompetitionNotFound,
		},
		{
			name: "db error",
			competitor: &domain.Competitor{
				PersonID:      "p-1",
				CompetitionID: "comp-1",
				EnrolledAt:    enrolled,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO competitors`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewCompetitorRepository(db)
			err = repo.Create(ctx, tt.competitor)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.competitor.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCompetitorRepository_List(t *testing.T) {
	ctx := context.Background()
	enrolled := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	params := domain.PaginationParams{Page: 1, PageSize: 10}

	tests := []struct {
		name      string
		filter    domain.CompetitorFilter
		mock      func(mock sqlmock.Sqlmock)
		wantLen   int
		wantTotal int
	}{
		{
			name:   "no filter",
			filter: domain.CompetitorFilter{},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM competitors`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
				mock.ExpectQuery(`SELECT id, person_id, competition_id, enrolled_at`).
					WithArgs(10, 0).
					WillReturnRows(sqlmock.NewRows([]string{"id", "person_id", "competition_id", "enrolled_at"}).
						AddRow("ct-1", "p-1", "comp-1", enrolled).
						AddRow("ct-2", "p-2", "comp-1", enrolled))
			},
			wantLen:   2,
			wantTotal: 2,
		},
		{
			name:   "filter by person and competition",
			filter: domain.CompetitorFilter{PersonID: "p-1", CompetitionID: "comp-1"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM competitors WHERE person_id = \$1 AND competition_id = \$2`).
					WithArgs("p-1", "comp-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(`WHERE person_id = \$1 AND competition_id = \$2`).
					WithArgs("p-1", "comp-1", 10, 0).
					WillReturnRows(sqlmock.NewRows([]string{"id", "person_id", "competition_id", "enrolled_at"}).
						AddRow("ct-1", "p-1", "comp-1", enrolled))
			},
			wantLen:   1,
			wantTotal: 1,
		},
		{
			name:   "empty",
			filter: domain.CompetitorFilter{PersonID: "p-none"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM competitors WHERE person_id = \$1`).
					WithArgs("p-none").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(`WHERE person_id = \$1`).
					WithArgs("p-none", 10, 0).
					WillReturnRows(sqlmock.NewRows([]string{"id", "person_id", "competition_id", "enrolled_at"}))
			},
			wantLen:   0,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewCompetitorRepository(db)
			got, total, err := repo.List(ctx, tt.filter, params)
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			require.Equal(t, tt.wantTotal, total)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCompetitorRepository_Delete(t *testing.T) {
	ctx := context.Background()
	enrolled := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Competitor
		wantErr error
	}{
		{
			name: "success returns deleted row",
			id:   "ct-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`DELETE FROM competitors\s+WHERE id = \$1`).
					WithArgs("ct-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "person_id", "competition_id", "enrolled_at"}).
						AddRow("ct-1", "p-1", "comp-1", enrolled))
			},
			want: &domain.Competitor{
				ID:            "ct-1",
				PersonID:      "p-1",
				CompetitionID: "comp-1",
				EnrolledAt:    enrolled,
			},
		},
		{
			name: "not found",
			id:   "ct-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`DELETE FROM competitors\s+WHERE id = \$1`).
					WithArgs("ct-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewCompetitorRepository(db)
			got, err := repo.Delete(ctx, tt.id)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
