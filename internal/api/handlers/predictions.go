package handlers

import (
	"encoding/json"
	"errors"
	"flight-price-service/internal/api/dto"
	"flight-price-service/internal/domain"
	"flight-price-service/internal/platform/obs"
	"flight-price-service/internal/services"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

const currencyINR = "INR"

type PredictionHandler struct {
	Predictor    *services.PricePredictor
	HistoryLimit int
}

// Predictions serves POST (create a prediction) and GET (recent history).
func (h *PredictionHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// create validates the submitted trip, encodes it and scores it with the model.
func (h *PredictionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictionRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	trip, err := toTripRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pred, err := h.Predictor.Predict(r.Context(), trip)
	if err != nil {
		var te *domain.TimingError
		if errors.As(err, &te) {
			writeJSON(w, r, http.StatusUnprocessableEntity, dto.TimingErrorResponse{
				Error:         te.Error(),
				Route:         te.Route.String(),
				MinHours:      te.MinHours,
				DurationHours: te.DurationHours,
			})
			return
		}

		log.Printf("req_id=%s predict price failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "price prediction failed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PredictionResponse{
		RequestID:      pred.RequestID,
		Message:        "Prediction complete!",
		Price:          pred.Price,
		FormattedPrice: pred.FormattedPrice,
		Currency:       currencyINR,
		DurationHours:  pred.DurationHours,
		Model:          pred.Model,
		Cached:         pred.Cached,
		Features:       pred.Features.Slice(),
	})
}

// list returns logged predictions, newest first. ?limit= caps the count.
func (h *PredictionHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := h.HistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if n < limit || limit <= 0 {
			limit = n
		}
	}

	preds, err := h.Predictor.Recent(r.Context(), limit)
	if errors.Is(err, services.ErrNoStore) {
		writeError(w, r, http.StatusNotFound, "prediction history is not enabled")
		return
	}
	if err != nil {
		log.Printf("req_id=%s list predictions failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPredictionsResponse{Predictions: make([]dto.PredictionSummary, 0, len(preds))}
	for _, p := range preds {
		tags := make([]string, 0, p.Trip.AdditionalInfo.Len())
		for _, t := range p.Trip.AdditionalInfo.Tags() {
			tags = append(tags, string(t))
		}

		res.Predictions = append(res.Predictions, dto.PredictionSummary{
			RequestID:      p.RequestID,
			Date:           p.Trip.Date.Format("2006-01-02"),
			DepartureTime:  p.Trip.Departure.String(),
			ArrivalTime:    p.Trip.Arrival.String(),
			Source:         string(p.Trip.Source),
			Destination:    string(p.Trip.Destination),
			TotalStops:     p.Trip.TotalStops,
			Airline:        string(p.Trip.Airline),
			AdditionalInfo: tags,
			DurationHours:  p.DurationHours,
			Price:          p.Price,
			FormattedPrice: services.FormatPrice(p.Price),
			Model:          p.Model,
			CreatedAt:      p.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Map a validated request body onto the domain model.
func toTripRequest(req dto.PredictionRequest) (domain.TripRequest, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.TripRequest{}, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	dep, err := domain.ParseClockTime(req.DepartureTime)
	if err != nil {
		return domain.TripRequest{}, domain.ValidationError{Field: "departure_time", Msg: "must be HH:MM", Err: err}
	}
	arr, err := domain.ParseClockTime(req.ArrivalTime)
	if err != nil {
		return domain.TripRequest{}, domain.ValidationError{Field: "arrival_time", Msg: "must be HH:MM", Err: err}
	}

	src, err := domain.ParseSourceCity(req.Source)
	if err != nil {
		return domain.TripRequest{}, err
	}
	dst, err := domain.ParseDestinationCity(req.Destination)
	if err != nil {
		return domain.TripRequest{}, err
	}
	airline, err := domain.ParseAirline(req.Airline)
	if err != nil {
		return domain.TripRequest{}, err
	}

	var info domain.InfoSet
	for _, s := range req.AdditionalInfo {
		tag, err := domain.ParseInfoTag(s)
		if err != nil {
			return domain.TripRequest{}, err
		}
		info.Add(tag)
	}

	stops := 0
	if req.TotalStops != nil {
		stops = *req.TotalStops
	}

	return domain.TripRequest{
		Date:           date,
		Departure:      dep,
		Arrival:        arr,
		Source:         src,
		Destination:    dst,
		TotalStops:     stops,
		Airline:        airline,
		AdditionalInfo: info,
	}, nil
}
