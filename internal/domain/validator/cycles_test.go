package validator_test

import (
	"testing"

	"github.com/keremk/renku/internal/domain/blueprint"
	"github.com/keremk/renku/internal/domain/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cyclicDoc(producers ...string) *blueprint.Document {
	imports := make([]blueprint.ProducerImport, len(producers))
	for i, name := range producers {
		imports[i] = blueprint.ProducerImport{Name: name}
	}
	return &blueprint.Document{
		Producers: imports,
		Connections: []blueprint.Connection{
			{From: "Writer.Draft", To: "Editor.Text"},
			{From: "Editor.Notes", To: "Writer.Feedback"},
		},
	}
}

func TestValidateTree_TwoProducerCycle_ReportedOnce(t *testing.T) {
	t.Parallel()

	result := validate(cyclicDoc("Writer", "Editor"))
	found := byCode(result.Errors, validator.CodeProducerCycle)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Message, "Editor → Writer → Editor")
}

func TestValidateTree_CycleDetection_IndependentOfDeclarationOrder(t *testing.T) {
	t.Parallel()

	forward := validate(cyclicDoc("Writer", "Editor"))
	reversed := validate(cyclicDoc("Editor", "Writer"))

	fw := byCode(forward.Errors, validator.CodeProducerCycle)
	rv := byCode(reversed.Errors, validator.CodeProducerCycle)
	require.Len(t, fw, 1)
	require.Len(t, rv, 1)
	assert.Equal(t, fw[0].Message, rv[0].Message)
}

func TestValidateTree_SelfReferencingProducer_NotACycle(t *testing.T) {
	t.Parallel()

	doc := &blueprint.Document{
		Producers: []blueprint.ProducerImport{{Name: "Refiner"}},
		Connections: []blueprint.Connection{
			{From: "Refiner.Output", To: "Refiner.Input"},
		},
	}

	result := validate(doc)
	assert.Empty(t, byCode(result.Errors, validator.CodeProducerCycle))
}

func TestValidateTree_ThreeProducerCycle_RendersFullPath(t *testing.T) {
	t.Parallel()

	doc := &blueprint.Document{
		Producers: []blueprint.ProducerImport{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		},
		Connections: []blueprint.Connection{
			{From: "A.Out", To: "B.In"},
			{From: "B.Out", To: "C.In"},
			{From: "C.Out", To: "A.In"},
		},
	}

	result := validate(doc)
	found := byCode(result.Errors, validator.CodeProducerCycle)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Message, "A → B → C → A")
}

func TestValidateTree_TwoDistinctCycles_BothReported(t *testing.T) {
	t.Parallel()

	doc := &blueprint.Document{
		Producers: []blueprint.ProducerImport{
			{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
		},
		Connections: []blueprint.Connection{
			{From: "A.Out", To: "B.In"},
			{From: "B.Out", To: "A.In"},
			{From: "C.Out", To: "D.In"},
			{From: "D.Out", To: "C.In"},
		},
	}

	result := validate(doc)
	assert.Len(t, byCode(result.Errors, validator.CodeProducerCycle), 2)
}

func TestValidateTree_AcyclicProducerChain_NoCycleReported(t *testing.T) {
	t.Parallel()

	doc := &blueprint.Document{
		Producers: []blueprint.ProducerImport{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		},
		Connections: []blueprint.Connection{
			{From: "A.Out", To: "B.In"},
			{From: "B.Out", To: "C.In"},
			{From: "A.Out", To: "C.In"},
		},
	}

	result := validate(doc)
	assert.Empty(t, byCode(result.Errors, validator.CodeProducerCycle))
}
