package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageDisplayName(t *testing.T) {
	assert.Equal(t, "Encoder", Stage{Name: Ptr("Encoder")}.DisplayName(0))
	assert.Equal(t, "Stage 1", Stage{}.DisplayName(0))
	assert.Equal(t, "Stage 3", Stage{}.DisplayName(2))
	assert.Equal(t, "", Stage{Name: Ptr("")}.DisplayName(4), "present but empty name is kept")
}

func TestBlockTypeOr(t *testing.T) {
	assert.Equal(t, "MLP", Block{Type: Ptr("MLP")}.TypeOr("Block"))
	assert.Equal(t, "Block", Block{}.TypeOr("Block"))
}

func TestBlockHasDetails(t *testing.T) {
	assert.False(t, Block{}.HasDetails())
	assert.False(t, Block{Details: Ptr("")}.HasDetails())
	assert.True(t, Block{Details: Ptr("x")}.HasDetails())
}

func TestCustomNodeDisplayLabel(t *testing.T) {
	tests := []struct {
		name string
		node CustomNode
		want string
	}{
		{"label wins", CustomNode{ID: Ptr("mtp"), Label: Ptr("Multi-Token")}, "Multi-Token"},
		{"falls back to id", CustomNode{ID: Ptr("mtp")}, "mtp"},
		{"unknown", CustomNode{}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.DisplayLabel())
		})
	}
}

func TestBlockCounts(t *testing.T) {
	cfg := &Config{
		Stages: []Stage{
			{Blocks: []Block{{Type: Ptr("MLP")}, {Type: Ptr("Attention")}, {Type: Ptr("MLP")}}},
			{Blocks: []Block{{Type: Ptr("Embedding")}, {}}},
		},
	}

	assert.Equal(t, []TypeCount{
		{Type: "Attention", Count: 1},
		{Type: "Embedding", Count: 1},
		{Type: "MLP", Count: 2},
	}, cfg.BlockCounts())
	assert.Equal(t, 5, cfg.BlockCount())
}

func TestBlockCountsEmpty(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.BlockCounts())
	assert.Zero(t, cfg.BlockCount())
}

func TestString(t *testing.T) {
	assert.Equal(t, "", String(nil))
	assert.Equal(t, "x", String(Ptr("x")))
}
