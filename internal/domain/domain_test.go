package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumJSONValidation(t *testing.T) {
	t.Run("category", func(t *testing.T) {
		var c ProductCategory
		require.NoError(t, json.Unmarshal([]byte(`"Planks"`), &c))
		assert.Equal(t, CategoryPlanks, c)
		assert.Error(t, json.Unmarshal([]byte(`"Saddles"`), &c))
		assert.Error(t, json.Unmarshal([]byte(`42`), &c))
	})

	t.Run("client type", func(t *testing.T) {
		var ct ClientType
		require.NoError(t, json.Unmarshal([]byte(`"b2b"`), &ct))
		assert.Equal(t, ClientB2B, ct)
		assert.Error(t, json.Unmarshal([]byte(`"wholesale"`), &ct))
	})

	t.Run("stage", func(t *testing.T) {
		var s PipelineStage
		require.NoError(t, json.Unmarshal([]byte(`"contact_made"`), &s))
		assert.Equal(t, StageContactMade, s)
		assert.Error(t, json.Unmarshal([]byte(`"archived"`), &s))
	})
}

func TestCategoriesCoverValid(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 8)
	for _, c := range cats {
		assert.True(t, c.Valid())
	}
	assert.False(t, ProductCategory("Bridles").Valid())
}

func TestPatchApplyPartial(t *testing.T) {
	p := Product{ID: "p1", Name: "Jump", Price: 100, B2BPrice: 80}
	price := 120.0
	ProductPatch{Price: &price}.Apply(&p)
	assert.Equal(t, 120.0, p.Price)
	assert.Equal(t, "Jump", p.Name)
	assert.Equal(t, 80.0, p.B2BPrice)

	d := Deal{ID: "d1", Notes: "old", Value: 10}
	notes := "new"
	DealPatch{Notes: &notes}.Apply(&d)
	assert.Equal(t, "new", d.Notes)
	assert.Equal(t, 10.0, d.Value)
}

func TestStageLabels(t *testing.T) {
	want := map[PipelineStage]string{
		StageLead:         "Lead",
		StageContactMade:  "Contact Made",
		StageProposalSent: "Proposal Sent",
		StageNegotiation:  "Negotiation",
		StageClosedWon:    "Won",
		StageClosedLost:   "Lost",
	}
	for stage, label := range want {
		assert.Equal(t, label, stage.Label())
	}
}
