package controllers

import (
	"net/http"

	"github.com/angelmondragon/invitation-backend/api/responses"
	"github.com/angelmondragon/invitation-backend/api/validators"
	"github.com/angelmondragon/invitation-backend/internal/concepts"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
)

// Reference photos arrive inline as data URIs.
const maxConceptBodyBytes = 12 << 20

type conceptRequest struct {
	Story     string `json:"story" validate:"notblank,max=2000"`
	Color     string `json:"color" validate:"max=100"`
	Mood      string `json:"mood" validate:"max=100"`
	Elements  string `json:"elements" validate:"max=500"`
	ImageData string `json:"image_data"`
}

type conceptResponse struct {
	Concepts []concepts.Concept `json:"concepts"`
}

// GenerateConcepts turns a couple's story into illustrated design concepts.
func GenerateConcepts(svc concepts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxConceptBodyBytes)

		var body conceptRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.Generate(r.Context(), concepts.Request{
			Story:     body.Story,
			Color:     body.Color,
			Mood:      body.Mood,
			Elements:  body.Elements,
			ImageData: body.ImageData,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, conceptResponse{Concepts: out})
	}
}
