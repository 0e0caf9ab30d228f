package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
)

var destinationColumns = []string{"id", "name", "country", "best_months", "festivals", "lat", "lng", "image_query"}

func newMockRepo(t *testing.T) (*DestinationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewDestinationRepo(sqlx.NewDb(db, "pgx"))
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	return repo, mock
}

func TestDestinationRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(destinationColumns).
		AddRow(int64(1714557600001), "Baku", "Azerbaiyán", "", "", "40.40", "49.86", "Baku, Azerbaiyán, city, travel").
		AddRow(int64(1714557600000), "Tbilisi", "Georgia", "", "", "41.71", "44.79", "Tbilisi, Georgia, city, travel")
	mock.ExpectQuery("SELECT id, name, country").WillReturnRows(rows)

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(list))
	}
	if list[0].Name != "Baku" || !list[0].IsUserAdded || !list[1].IsUserAdded {
		t.Fatalf("unexpected list: %#v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDestinationRepository_AppendReturnsStoredRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).UnixMilli()
	mock.ExpectQuery("INSERT INTO user_destination").
		WithArgs(ts, "Tbilisi", "Georgia", "May", "Tbilisoba", "41.71", "44.79", "Tbilisi, Georgia, city, travel").
		WillReturnRows(sqlmock.NewRows(destinationColumns).
			AddRow(ts, "Tbilisi", "Georgia", "May", "Tbilisoba", "41.71", "44.79", "Tbilisi, Georgia, city, travel"))

	dest, err := repo.Append(context.Background(), domain.Destination{
		Name:       "Tbilisi",
		Country:    "Georgia",
		BestMonths: "May",
		Festivals:  "Tbilisoba",
		Lat:        "41.71",
		Lng:        "44.79",
		ImageQuery: "Tbilisi, Georgia, city, travel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.ID != ts || !dest.IsUserAdded {
		t.Fatalf("unexpected destination: %#v", dest)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDestinationRepository_AppendConflictNoRows(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO user_destination").
		WillReturnRows(sqlmock.NewRows(destinationColumns))

	_, err := repo.Append(context.Background(), domain.Destination{Name: "Tbilisi", Country: "Georgia"})
	if !errors.Is(err, domain.ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
}

func TestDestinationRepository_AppendNameCountryViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO user_destination").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "user_destination_name_country_key"})

	_, err := repo.Append(context.Background(), domain.Destination{Name: "Tbilisi", Country: "Georgia"})
	if !errors.Is(err, domain.ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
}

func TestDestinationRepository_AppendRetriesIDCollision(t *testing.T) {
	repo, mock := newMockRepo(t)

	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).UnixMilli()
	mock.ExpectQuery("INSERT INTO user_destination").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "user_destination_pkey"})
	mock.ExpectQuery("INSERT INTO user_destination").
		WillReturnRows(sqlmock.NewRows(destinationColumns).
			AddRow(ts+1, "Baku", "Azerbaiyán", "", "", "40.40", "49.86", "Baku, Azerbaiyán, city, travel"))

	dest, err := repo.Append(context.Background(), domain.Destination{Name: "Baku", Country: "Azerbaiyán", Lat: "40.40", Lng: "49.86"})
	if err != nil {
		t.Fatalf("id collision on a new destination must not fail the append: %v", err)
	}
	if dest.ID != ts+1 || dest.Name != "Baku" || !dest.IsUserAdded {
		t.Fatalf("unexpected destination: %#v", dest)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDestinationRepository_AppendRepeatedIDCollisionIsNotConflict(t *testing.T) {
	repo, mock := newMockRepo(t)

	pkey := &pgconn.PgError{Code: "23505", ConstraintName: "user_destination_pkey"}
	mock.ExpectQuery("INSERT INTO user_destination").WillReturnError(pkey)
	mock.ExpectQuery("INSERT INTO user_destination").WillReturnError(pkey)

	_, err := repo.Append(context.Background(), domain.Destination{Name: "Baku", Country: "Azerbaiyán"})
	if err == nil || errors.Is(err, domain.ErrDestinationExists) {
		t.Fatalf("expected a non-conflict error, got %v", err)
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.ConstraintName != "user_destination_pkey" {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDestinationRepository_AppendOtherErrorWrapped(t *testing.T) {
	repo, mock := newMockRepo(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery("INSERT INTO user_destination").WillReturnError(boom)

	_, err := repo.Append(context.Background(), domain.Destination{Name: "Tbilisi", Country: "Georgia"})
	if err == nil || errors.Is(err, domain.ErrDestinationExists) {
		t.Fatalf("expected a non-conflict error, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

func TestIsDestinationConflict(t *testing.T) {
	if !isDestinationConflict(&pq.Error{Code: "23505", Constraint: "user_destination_name_country_key"}) {
		t.Fatal("expected lib/pq (name, country) violation to be a conflict")
	}
	if isDestinationConflict(&pq.Error{Code: "23505", Constraint: "user_destination_pkey"}) {
		t.Fatal("primary key violation is not a duplicate destination")
	}
	if !isUniqueViolation(&pq.Error{Code: "23505", Constraint: "user_destination_pkey"}) {
		t.Fatal("primary key violation is still a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("foreign key violation is not a unique violation")
	}
	if isUniqueViolation(errors.New("plain")) || isDestinationConflict(errors.New("plain")) {
		t.Fatal("plain error is neither")
	}
}
