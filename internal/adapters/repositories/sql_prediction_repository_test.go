package repositories

import (
	"context"
	"errors"
	"flight-price-service/internal/domain"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func samplePrediction() *domain.Prediction {
	return &domain.Prediction{
		RequestID: "req-1",
		Trip: domain.TripRequest{
			Date:           time.Date(2019, 3, 24, 0, 0, 0, 0, time.UTC),
			Departure:      domain.ClockTime{Hour: 8, Minute: 0},
			Arrival:        domain.ClockTime{Hour: 11, Minute: 0},
			Source:         domain.SourceMumbai,
			Destination:    domain.DestinationKolkata,
			TotalStops:     1,
			Airline:        domain.IndiGo,
			AdditionalInfo: domain.NewInfoSet(domain.NoInfo1),
		},
		DurationHours: 3,
		Price:         5423.17,
		Model:         "forest-v1",
		CreatedAt:     time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

var predictionColumns = []string{
	"request_id", "journey_date", "departure_time", "arrival_time", "source", "destination",
	"total_stops", "airline", "additional_info", "duration_hours", "price", "model", "created_at",
}

func TestSQLPredictionRepositorySave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO predictions").
		WithArgs(
			"req-1", "2019-03-24", "08:00", "11:00", "Mumbai", "Kolkata",
			1, "IndiGo", `["No info 1","No info 2"]`, 3.0, 5423.17, "forest-v1", sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewSQLPredictionRepository(db)
	if err := repo.SavePrediction(context.Background(), samplePrediction()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLPredictionRepositorySaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO predictions").WillReturnError(errors.New("disk full"))

	repo := NewSQLPredictionRepository(db)
	if err := repo.SavePrediction(context.Background(), samplePrediction()); err == nil {
		t.Fatal("expected error")
	}
}

func TestSQLPredictionRepositoryListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM predictions").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(predictionColumns).
			AddRow("req-2", "2019-05-01", "22:00", "01:30", "Delhi", "Cochin",
				2, "Air India", `["Red-eye flight"]`, 3.5, 9100.0, "forest-v1", created).
			AddRow("req-1", "2019-03-24", "08:00", "11:00", "Mumbai", "Kolkata",
				0, "IndiGo", `[]`, 3.0, 4100.5, "forest-v1", created.Add(-time.Hour)))

	repo := NewSQLPredictionRepository(db)
	preds, err := repo.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(preds) != 2 {
		t.Fatalf("len = %d, want 2", len(preds))
	}
	first := preds[0]
	if first.RequestID != "req-2" || first.Trip.Source != domain.SourceDelhi || first.Trip.Destination != domain.DestinationCochin {
		t.Fatalf("first = %+v, want req-2 Delhi->Cochin", first)
	}
	if first.Trip.Departure != (domain.ClockTime{Hour: 22}) || first.Trip.Arrival != (domain.ClockTime{Hour: 1, Minute: 30}) {
		t.Fatalf("times = %s->%s, want 22:00->01:30", first.Trip.Departure, first.Trip.Arrival)
	}
	if !first.Trip.AdditionalInfo.Contains(domain.RedEyeFlight) {
		t.Fatalf("info = %v, want Red-eye flight", first.Trip.AdditionalInfo.Tags())
	}
	if preds[1].Trip.AdditionalInfo.Len() != 0 {
		t.Fatalf("second info = %v, want empty", preds[1].Trip.AdditionalInfo.Tags())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLPredictionRepositoryListRecentZeroLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	preds, err := NewSQLPredictionRepository(db).ListRecent(context.Background(), 0)
	if err != nil || len(preds) != 0 {
		t.Fatalf("got %v, %v; want empty, nil", preds, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS predictions .*BIGSERIAL").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_predictions_created_at").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := InitSchema(db, DialectPostgres); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaUnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	if err := InitSchema(db, "oracle"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}
