package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/export"
)

func (rt *Router) parseFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "upload exceeds the size limit"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	if header.Size == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file is empty"})
		return
	}

	start := time.Now()
	result, err := rt.parser.ParseEnvelope(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	rt.observeResult("parse", result, time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) parseJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)

	start := time.Now()
	result, err := rt.parser.ParseEnvelope(r.Context(), "inline-json", r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	rt.observeResult("parse_json", result, time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) parseBatch(w http.ResponseWriter, r *http.Request) {
	results, ok := rt.collectBatch(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (rt *Router) exportBatch(w http.ResponseWriter, r *http.Request) {
	results, ok := rt.collectBatch(w, r)
	if !ok {
		return
	}

	workbook, err := export.BatchReport(results)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "building report failed"})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="parse-report.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

// collectBatch parses every uploaded file independently. A bad file becomes
// an error entry; it never aborts the rest of the batch.
func (rt *Router) collectBatch(w http.ResponseWriter, r *http.Request) ([]domain.BatchItemResult, bool) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return nil, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(rt.cfg.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "upload exceeds the size limit"})
			return nil, false
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart request"})
		return nil, false
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'files' is required"})
		return nil, false
	}

	results := make([]domain.BatchItemResult, 0, len(files))
	for _, header := range files {
		if header.Size == 0 {
			results = append(results, domain.BatchItemResult{
				Filename: header.Filename,
				Error:    "file is empty",
			})
			continue
		}

		file, err := header.Open()
		if err != nil {
			results = append(results, domain.BatchItemResult{
				Filename: header.Filename,
				Error:    "opening upload failed",
			})
			continue
		}

		start := time.Now()
		result, err := rt.parser.ParseEnvelope(r.Context(), header.Filename, file)
		file.Close()
		if err != nil {
			results = append(results, domain.BatchItemResult{
				Filename: header.Filename,
				Error:    err.Error(),
			})
			continue
		}

		rt.observeResult("parse_batch", result, time.Since(start))
		results = append(results, domain.BatchItemResult{
			Filename: header.Filename,
			Success:  true,
			Result:   result,
		})
	}

	if rt.metrics != nil {
		rt.metrics.RecordBatch(serviceName, len(files))
	}
	return results, true
}

func (rt *Router) observeResult(endpoint string, result *domain.ParseResult, duration time.Duration) {
	if rt.metrics == nil {
		return
	}
	rt.metrics.RecordParse(serviceName, endpoint, string(result.Validation.OverallStatus), duration)

	misses := map[string]bool{
		"documentType":  result.DocumentType == nil,
		"date":          result.Date == nil,
		"time":          result.Time == nil,
		"vehicleNumber": result.VehicleNumber == nil,
		"totalWeight":   result.TotalWeight == nil,
		"emptyWeight":   result.EmptyWeight == nil,
		"netWeight":     result.NetWeight == nil,
		"customer":      result.Customer == nil,
		"productName":   result.ProductName == nil,
		"issuer":        result.Issuer == nil,
		"gps":           result.GPS == nil,
	}
	for field, missed := range misses {
		if missed {
			rt.metrics.RecordFieldMiss(serviceName, field)
		}
	}
}
