package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/archviz/pkg/errors"
)

func TestValidateMarkdown(t *testing.T) {
	t.Run("model_name only", func(t *testing.T) {
		assert.NoError(t, Validate(&Config{ModelName: Ptr("M")}, TargetMarkdown))
	})

	t.Run("empty model_name is present", func(t *testing.T) {
		assert.NoError(t, Validate(&Config{ModelName: Ptr("")}, TargetMarkdown))
	})

	t.Run("missing model_name", func(t *testing.T) {
		err := Validate(&Config{}, TargetMarkdown)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
		assert.Contains(t, err.Error(), "model_name")
	})

	t.Run("missing block type", func(t *testing.T) {
		cfg := &Config{
			ModelName: Ptr("M"),
			Stages: []Stage{
				{Blocks: []Block{{Type: Ptr("MLP")}}},
				{Blocks: []Block{{Type: Ptr("MLP")}, {Details: Ptr("no type")}}},
			},
		}
		err := Validate(cfg, TargetMarkdown)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stages[1].blocks[1].type")
	})

	t.Run("stage name not required", func(t *testing.T) {
		cfg := &Config{ModelName: Ptr("M"), Stages: []Stage{{}}}
		assert.NoError(t, Validate(cfg, TargetMarkdown))
	})

	t.Run("custom edges ignored", func(t *testing.T) {
		cfg := &Config{ModelName: Ptr("M"), CustomEdges: []CustomEdge{{}}}
		assert.NoError(t, Validate(cfg, TargetMarkdown))
	})
}

func TestValidateDiagram(t *testing.T) {
	t.Run("empty config", func(t *testing.T) {
		assert.NoError(t, Validate(&Config{}, TargetDiagram))
	})

	t.Run("blocks without type are fine", func(t *testing.T) {
		cfg := &Config{Stages: []Stage{{Blocks: []Block{{}}}}}
		assert.NoError(t, Validate(cfg, TargetDiagram))
	})

	t.Run("custom node without id", func(t *testing.T) {
		cfg := &Config{CustomNodes: []CustomNode{{Label: Ptr("orphan")}}}
		err := Validate(cfg, TargetDiagram)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
		assert.Contains(t, err.Error(), "custom_nodes[0].id")
	})

	t.Run("custom node id with newline", func(t *testing.T) {
		cfg := &Config{CustomNodes: []CustomNode{{ID: Ptr("a\nb")}}}
		err := Validate(cfg, TargetDiagram)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
	})

	t.Run("edge endpoints", func(t *testing.T) {
		cfg := &Config{CustomEdges: []CustomEdge{{From: Ptr("a")}, {To: Ptr("b")}}}
		err := Validate(cfg, TargetDiagram)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "custom_edges[0].to")
		assert.Contains(t, err.Error(), "custom_edges[1].from")
	})

	t.Run("model_name not required", func(t *testing.T) {
		cfg := &Config{Title: Ptr("T")}
		assert.NoError(t, Validate(cfg, TargetDiagram))
	})
}

func TestValidateUnknownTarget(t *testing.T) {
	err := Validate(&Config{}, Target(9))
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInternal))
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "markdown", TargetMarkdown.String())
	assert.Equal(t, "diagram", TargetDiagram.String())
	assert.Equal(t, "target(9)", Target(9).String())
}
