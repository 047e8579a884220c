package domain

import (
	"fmt"
	"time"
)

// PipelineStage is one of the six fixed positions on the sales board.
// Every deal is always in exactly one stage.
type PipelineStage string

const (
	StageLead         PipelineStage = "lead"
	StageContactMade  PipelineStage = "contact_made"
	StageProposalSent PipelineStage = "proposal_sent"
	StageNegotiation  PipelineStage = "negotiation"
	StageClosedWon    PipelineStage = "closed_won"
	StageClosedLost   PipelineStage = "closed_lost"
)

// Stages returns the pipeline stages in board order.
func Stages() []PipelineStage {
	return []PipelineStage{
		StageLead,
		StageContactMade,
		StageProposalSent,
		StageNegotiation,
		StageClosedWon,
		StageClosedLost,
	}
}

func (s PipelineStage) Valid() bool {
	switch s {
	case StageLead, StageContactMade, StageProposalSent,
		StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// Label returns the board column title for the stage.
func (s PipelineStage) Label() string {
	switch s {
	case StageLead:
		return "Lead"
	case StageContactMade:
		return "Contact Made"
	case StageProposalSent:
		return "Proposal Sent"
	case StageNegotiation:
		return "Negotiation"
	case StageClosedWon:
		return "Won"
	case StageClosedLost:
		return "Lost"
	}
	return string(s)
}

// Closed reports whether the stage is terminal on the board. Closed deals
// stay movable; the board is an open Kanban, not a strict workflow.
func (s PipelineStage) Closed() bool {
	return s == StageClosedWon || s == StageClosedLost
}

func (s *PipelineStage) UnmarshalJSON(data []byte) error {
	v, err := unquote(data)
	if err != nil {
		return err
	}
	ps := PipelineStage(v)
	if !ps.Valid() {
		return fmt.Errorf("invalid pipeline stage %q", v)
	}
	*s = ps
	return nil
}

// DealLine references a catalog product with a quantity.
type DealLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Deal is a sales opportunity tied to a client. UpdatedAt is refreshed on
// every mutation, stage moves included.
type Deal struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"clientId"`
	Lines     []DealLine    `json:"products"`
	Stage     PipelineStage `json:"stage"`
	Value     float64       `json:"value"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// DealPatch carries a partial deal update; nil fields are left as-is.
// Stage moves go through the dedicated stage operation, not the patch.
type DealPatch struct {
	ClientID *string     `json:"clientId,omitempty"`
	Lines    *[]DealLine `json:"products,omitempty"`
	Value    *float64    `json:"value,omitempty"`
	Notes    *string     `json:"notes,omitempty"`
}

// Apply merges the patch into d.
func (patch DealPatch) Apply(d *Deal) {
	if patch.ClientID != nil {
		d.ClientID = *patch.ClientID
	}
	if patch.Lines != nil {
		d.Lines = *patch.Lines
	}
	if patch.Value != nil {
		d.Value = *patch.Value
	}
	if patch.Notes != nil {
		d.Notes = *patch.Notes
	}
}
