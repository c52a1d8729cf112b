package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jszwec/csvutil"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeCSV renders a slice of csv-tagged structs with a header row.
func writeCSV(w http.ResponseWriter, r *http.Request, filename string, v any) {
	b, err := csvutil.Marshal(v)
	if err != nil {
		log.Printf("csv encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		log.Printf("csv write failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
