package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/food_classifier/internal/domain"
)

const maxClassifyBody = 1 << 20

type ImageClassifier interface {
	Classify(ctx context.Context, filePath string) (*domain.ClassifyResult, error)
}

type ClassifyHandler struct {
	log        *slog.Logger
	classifier ImageClassifier
}

func NewClassifyHandler(log *slog.Logger, classifier ImageClassifier) *ClassifyHandler {
	return &ClassifyHandler{
		log:        log,
		classifier: classifier,
	}
}

type ClassifyRequest struct {
	FilePath string `json:"file_path"`
}

type ClassifyResponse struct {
	Message string                 `json:"message"`
	Results *domain.ProcessedImage `json:"results,omitempty"`
}

func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	// A body that is not JSON is treated like a missing path.
	var req ClassifyRequest
	_ = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxClassifyBody)).Decode(&req)

	result, err := h.classifier.Classify(r.Context(), req.FilePath)
	switch {
	case errors.Is(err, domain.ErrMissingFilePath):
		writeError(w, http.StatusBadRequest, "No file path provided")
		return
	case errors.Is(err, domain.ErrAlreadyProcessing):
		writeJSON(w, http.StatusAccepted, ClassifyResponse{
			Message: fmt.Sprintf("File %s is already being processed", domain.FileIDFromPath(req.FilePath)),
		})
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "failed to classify image",
			slog.String("file_path", req.FilePath),
			slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	message := "Image processed successfully"
	if result.AlreadyProcessed {
		message = fmt.Sprintf("File %s already processed", result.Image.FileID)
	}

	writeJSON(w, http.StatusOK, ClassifyResponse{
		Message: message,
		Results: result.Image,
	})
}
