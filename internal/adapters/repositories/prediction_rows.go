package repositories

import (
	"database/sql"
	"encoding/json"
	"flight-price-service/internal/domain"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Column values for one predictions row, in insert order.
func predictionArgs(p *domain.Prediction) ([]any, error) {
	tags := make([]string, 0, p.Trip.AdditionalInfo.Len())
	for _, t := range p.Trip.AdditionalInfo.Tags() {
		tags = append(tags, string(t))
	}
	info, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode additional_info: %w", err)
	}

	return []any{
		p.RequestID,
		p.Trip.Date.Format(dateLayout),
		p.Trip.Departure.String(),
		p.Trip.Arrival.String(),
		string(p.Trip.Source),
		string(p.Trip.Destination),
		p.Trip.TotalStops,
		string(p.Trip.Airline),
		string(info),
		p.DurationHours,
		p.Price,
		p.Model,
		p.CreatedAt.UTC(),
	}, nil
}

const selectPredictionColumns = `
	request_id, journey_date, departure_time, arrival_time, source, destination,
	total_stops, airline, additional_info, duration_hours, price, model, created_at
`

// Scan predictions rows. Feature vectors are not persisted and stay zero.
func scanPredictions(rows *sql.Rows) ([]*domain.Prediction, error) {
	out := make([]*domain.Prediction, 0, 16)
	for rows.Next() {
		var (
			p                 domain.Prediction
			date, dep, arr    string
			src, dst, airline string
			info              string
			createdAt         string
		)
		if err := rows.Scan(
			&p.RequestID, &date, &dep, &arr, &src, &dst,
			&p.Trip.TotalStops, &airline, &info, &p.DurationHours, &p.Price, &p.Model, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		d, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse journey_date %q: %w", date, err)
		}
		depTime, err := domain.ParseClockTime(dep)
		if err != nil {
			return nil, err
		}
		arrTime, err := domain.ParseClockTime(arr)
		if err != nil {
			return nil, err
		}

		var tags []string
		if err := json.Unmarshal([]byte(info), &tags); err != nil {
			return nil, fmt.Errorf("decode additional_info: %w", err)
		}
		for _, t := range tags {
			p.Trip.AdditionalInfo.Add(domain.InfoTag(t))
		}

		p.Trip.Date = d
		p.Trip.Departure = depTime
		p.Trip.Arrival = arrTime
		p.Trip.Source = domain.SourceCity(src)
		p.Trip.Destination = domain.DestinationCity(dst)
		p.Trip.Airline = domain.Airline(airline)
		p.CreatedAt, err = parseTimestamp(createdAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return out, nil
}

// Drivers hand timestamps back either as time.Time (rendered RFC 3339 by
// database/sql) or as SQLite's text form.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse created_at %q: unknown layout", s)
}
