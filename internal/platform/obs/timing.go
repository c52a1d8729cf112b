package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Attach a request id for downstream log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs how long op took once the returned func is called.
//
//	defer obs.Time(ctx, "model.Predict")(&err)
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%.3fms err=%v", reqID, op, float64(dur.Microseconds())/1000.0, *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%.3fms", reqID, op, float64(dur.Microseconds())/1000.0)
	}
}
