package blueprint_test

import (
	"testing"

	"github.com/keremk/renku/internal/domain/blueprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCondition_UnmarshalYAML_Leaf(t *testing.T) {
	t.Parallel()

	var cond blueprint.Condition
	err := yaml.Unmarshal([]byte("when: Transcript.Language\nis: en"), &cond)
	require.NoError(t, err)

	assert.True(t, cond.IsLeaf())
	assert.False(t, cond.IsGroup())
	assert.Equal(t, "Transcript.Language", cond.When)
	assert.Equal(t, blueprint.Scalar("en"), cond.Is)
}

func TestCondition_UnmarshalYAML_UnquotedScalars_KeptAsLiteralText(t *testing.T) {
	t.Parallel()

	var cond blueprint.Condition
	err := yaml.Unmarshal([]byte("when: HasAudio\nis: true"), &cond)
	require.NoError(t, err)

	assert.Equal(t, blueprint.Scalar("true"), cond.Is)

	err = yaml.Unmarshal([]byte("when: SegmentCount\nis: 4"), &cond)
	require.NoError(t, err)

	assert.Equal(t, blueprint.Scalar("4"), cond.Is)
}

func TestCondition_UnmarshalYAML_NestedGroups(t *testing.T) {
	t.Parallel()

	data := []byte(`
any:
  - when: Language
    is: en
  - all:
      - when: HasAudio
        is: "true"
      - when: SegmentCount
        is: "2"
`)

	var cond blueprint.Condition
	err := yaml.Unmarshal(data, &cond)
	require.NoError(t, err)

	assert.True(t, cond.IsGroup())
	require.Len(t, cond.Any, 2)
	assert.True(t, cond.Any[0].IsLeaf())
	assert.True(t, cond.Any[1].IsGroup())
	require.Len(t, cond.Any[1].All, 2)
}

func TestCondition_Leaves_CollectsEveryLeafDepthFirst(t *testing.T) {
	t.Parallel()

	cond := blueprint.Condition{
		Any: []blueprint.Condition{
			{When: "Language", Is: "en"},
			{All: []blueprint.Condition{
				{When: "HasAudio", Is: "true"},
				{When: "SegmentCount", Is: "2"},
			}},
		},
	}

	leaves := cond.Leaves()
	require.Len(t, leaves, 3)
	assert.Equal(t, "Language", leaves[0].When)
	assert.Equal(t, "HasAudio", leaves[1].When)
	assert.Equal(t, "SegmentCount", leaves[2].When)
}

func TestCondition_Children_ReturnsGroupMembers(t *testing.T) {
	t.Parallel()

	leaf := blueprint.Condition{When: "Language", Is: "en"}
	assert.Nil(t, leaf.Children())

	group := blueprint.Condition{All: []blueprint.Condition{leaf}}
	assert.Len(t, group.Children(), 1)
}
