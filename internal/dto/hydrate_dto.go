package dto

import (
	"time"

	"github.com/google/uuid"
)

type HydrateContent struct {
	ContentId string `json:"content_id" validate:"required"`
	Html      string `json:"html"`
}

type HydrateRequest struct {
	DraftId  uuid.UUID        `json:"-"`
	Contents []HydrateContent `json:"contents" validate:"required,min=1,dive"`
}

type HydrateResponse struct {
	Contents map[string]string `json:"contents"`
}

type PreviewResponse struct {
	DraftId    uuid.UUID         `json:"draft_id"`
	Header     map[string]string `json:"header"`
	Body       string            `json:"body"`
	RenderedAt time.Time         `json:"rendered_at"`
}

// DraftSavedMessage is the event payload published after a successful
// save; the preview worker consumes it.
type DraftSavedMessage struct {
	DraftId uuid.UUID `json:"draft_id"`
}
