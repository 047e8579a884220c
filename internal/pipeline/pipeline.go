// Package pipeline models the six-stage sales board. The board is an open
// Kanban: any stage is reachable from any other in one move, terminal stages
// included.
package pipeline

import (
	"github.com/montanaflynn/stats"

	"github.com/bjo163/showjumps-crm/internal/domain"
	"github.com/bjo163/showjumps-crm/internal/store"
)

// Column is one board column: a stage and the deals currently in it.
type Column struct {
	Stage domain.PipelineStage `json:"stage"`
	Label string               `json:"label"`
	Deals []domain.Deal        `json:"deals"`
}

// Board returns the full board, one column per stage in board order.
func Board(st *store.Store) []Column {
	cols := make([]Column, 0, len(domain.Stages()))
	for _, stage := range domain.Stages() {
		cols = append(cols, Column{
			Stage: stage,
			Label: stage.Label(),
			Deals: st.DealsByStage(stage),
		})
	}
	return cols
}

// Move reassigns a deal to the target stage and returns the updated deal.
// Returns false when the deal does not exist; the store itself stays a
// silent no-op either way. Moving onto the current stage changes nothing.
func Move(st *store.Store, dealID string, target domain.PipelineStage) (domain.Deal, bool) {
	if _, ok := st.DealByID(dealID); !ok {
		return domain.Deal{}, false
	}
	st.UpdateDealStage(dealID, target)
	return st.DealByID(dealID)
}

// StageSummary aggregates the deals of one stage.
type StageSummary struct {
	Stage       domain.PipelineStage `json:"stage"`
	Label       string               `json:"label"`
	Count       int                  `json:"count"`
	TotalValue  float64              `json:"totalValue"`
	MeanValue   float64              `json:"meanValue"`
	MedianValue float64              `json:"medianValue"`
}

// Summarize computes per-stage deal counts and value statistics over the
// given deal snapshot, in board order. Stages without deals report zeros.
func Summarize(deals []domain.Deal) []StageSummary {
	byStage := make(map[domain.PipelineStage][]float64, len(domain.Stages()))
	for _, d := range deals {
		byStage[d.Stage] = append(byStage[d.Stage], d.Value)
	}

	out := make([]StageSummary, 0, len(domain.Stages()))
	for _, stage := range domain.Stages() {
		values := byStage[stage]
		sum := StageSummary{Stage: stage, Label: stage.Label(), Count: len(values)}
		if len(values) > 0 {
			total, _ := stats.Sum(values)
			mean, _ := stats.Mean(values)
			median, _ := stats.Median(values)
			sum.TotalValue = total
			sum.MeanValue = mean
			sum.MedianValue = median
		}
		out = append(out, sum)
	}
	return out
}
