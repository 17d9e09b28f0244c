package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/model"
	"github.com/Sujal861/knee-xray-insight-system/pkg/service/classifier"
	"github.com/Sujal861/knee-xray-insight-system/pkg/utils/logging"
	"github.com/Sujal861/knee-xray-insight-system/pkg/utils/safe"
)

const timestampFormat = "2006-01-02 15:04:05"

type predictResponse struct {
	Grade          string             `json:"grade"`
	GradeIndex     int                `json:"grade_index"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities"`
	Interpretation string             `json:"interpretation"`
	Timestamp      string             `json:"timestamp"`
	Recorded       bool               `json:"recorded"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.upload.MaxSizeBytes); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart request"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "file is required"})
		return
	}
	defer safe.Close(r.Context(), file)

	if !s.upload.Allows(header.Filename) {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("invalid file type, allowed: %v", s.upload.AllowedExts),
		})
		return
	}
	if header.Size > s.upload.MaxSizeBytes {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("file too large, maximum is %d bytes", s.upload.MaxSizeBytes),
		})
		return
	}

	// The browser does not transmit mtime with multipart uploads, so the
	// client passes it along as a form field when it wants reproducibility
	// across uploads of the same file.
	var lastModified int64
	if v := r.FormValue("last_modified"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			lastModified = parsed
		}
	}

	// A failed sample read degrades the seed instead of failing the request
	sample := make([]byte, classifier.SampleSize)
	n, err := io.ReadFull(file, sample)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		logging.From(r.Context()).Warn("failed to read file sample, classifying without it", "error", err)
		sample = nil
		n = 0
	}

	out, err := s.uc.Predict(r.Context(), classifier.FileInput{
		Name:           header.Filename,
		SizeBytes:      header.Size,
		LastModifiedMs: lastModified,
		Sample:         sample[:n],
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, resultToResponse(out.Result, out.Recorded))
}

func resultToResponse(result *model.ClassifyResult, recorded bool) predictResponse {
	return predictResponse{
		Grade:          result.Grade.String(),
		GradeIndex:     result.Grade.Index(),
		Confidence:     result.Confidence,
		Probabilities:  result.ProbabilityMap(),
		Interpretation: result.Interpretation,
		Timestamp:      result.Timestamp.Format(timestampFormat),
		Recorded:       recorded,
	}
}

func formatTime(t time.Time) string {
	return t.Format(timestampFormat)
}
