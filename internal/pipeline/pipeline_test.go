package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjo163/showjumps-crm/internal/domain"
	"github.com/bjo163/showjumps-crm/internal/store"
)

func newDeal(id string, stage domain.PipelineStage, value float64) domain.Deal {
	ts := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return domain.Deal{
		ID:        id,
		ClientID:  "c1",
		Stage:     stage,
		Value:     value,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func TestBoardHasAllStagesInOrder(t *testing.T) {
	st := store.New(nil)
	st.AddDeal(newDeal("d1", domain.StageLead, 100))
	st.AddDeal(newDeal("d2", domain.StageNegotiation, 500))

	cols := Board(st)
	require.Len(t, cols, 6)
	assert.Equal(t, domain.StageLead, cols[0].Stage)
	assert.Equal(t, domain.StageClosedLost, cols[5].Stage)
	assert.Len(t, cols[0].Deals, 1)
	assert.Len(t, cols[3].Deals, 1)
	assert.Empty(t, cols[4].Deals)
	assert.Equal(t, "Won", cols[4].Label)
}

func TestMove(t *testing.T) {
	st := store.New(nil)
	st.AddDeal(newDeal("d1", domain.StageLead, 100))

	t.Run("unknown deal", func(t *testing.T) {
		_, found := Move(st, "nope", domain.StageNegotiation)
		assert.False(t, found)
	})

	t.Run("free reassignment including reopening", func(t *testing.T) {
		d, found := Move(st, "d1", domain.StageClosedWon)
		require.True(t, found)
		assert.Equal(t, domain.StageClosedWon, d.Stage)
		firstMove := d.UpdatedAt

		d, found = Move(st, "d1", domain.StageLead)
		require.True(t, found)
		assert.Equal(t, domain.StageLead, d.Stage)
		assert.False(t, d.UpdatedAt.Before(firstMove))
	})
}

func TestSummarize(t *testing.T) {
	deals := []domain.Deal{
		newDeal("d1", domain.StageLead, 100),
		newDeal("d2", domain.StageLead, 300),
		newDeal("d3", domain.StageLead, 200),
		newDeal("d4", domain.StageClosedWon, 1000),
	}

	summaries := Summarize(deals)
	require.Len(t, summaries, 6)

	lead := summaries[0]
	assert.Equal(t, domain.StageLead, lead.Stage)
	assert.Equal(t, 3, lead.Count)
	assert.InDelta(t, 600.0, lead.TotalValue, 1e-9)
	assert.InDelta(t, 200.0, lead.MeanValue, 1e-9)
	assert.InDelta(t, 200.0, lead.MedianValue, 1e-9)

	won := summaries[4]
	assert.Equal(t, 1, won.Count)
	assert.InDelta(t, 1000.0, won.TotalValue, 1e-9)

	empty := summaries[1]
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.TotalValue)
	assert.Zero(t, empty.MeanValue)
}

func TestStageEnum(t *testing.T) {
	assert.True(t, domain.StageClosedWon.Closed())
	assert.True(t, domain.StageClosedLost.Closed())
	assert.False(t, domain.StageNegotiation.Closed())
	assert.False(t, domain.PipelineStage("archived").Valid())
	assert.Equal(t, 6, len(domain.Stages()))
}
