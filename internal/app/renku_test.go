package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/keremk/renku/internal/app"
	"github.com/keremk/renku/internal/domain/blueprint"
	"github.com/keremk/renku/internal/domain/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenku_Validate_ValidBlueprint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "clip.yaml", `
meta:
  id: clip
inputs:
  - name: Script
    type: text
artifacts:
  - name: Clip
    type: video
producers:
  - name: SegmentMaker
connections:
  - from: Script
    to: SegmentMaker.Prompt
  - from: SegmentMaker.Video
    to: Clip
`)

	var out bytes.Buffer
	result, err := app.New(&out).Validate(context.Background(), path, app.ValidateOptions{})
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Contains(t, out.String(), "1 documents")
}

func TestRenku_Validate_InvalidBlueprint_CollectsIssues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "clip.yaml", `
artifacts:
  - name: Clip
    type: video
connections:
  - from: Ghost.Video
    to: Clip
`)

	var out bytes.Buffer
	result, err := app.New(&out).Validate(context.Background(), path, app.ValidateOptions{})
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, validator.CodeProducerNotFound, result.Errors[0].Code)
}

func TestRenku_Validate_MissingFile_ReturnsLoadError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := app.New(&out).Validate(context.Background(),
		filepath.Join(t.TempDir(), "absent.yaml"), app.ValidateOptions{})

	require.Error(t, err)
	assert.True(t, blueprint.IsLoadError(err, blueprint.ErrCodeBlueprintNotFound))
}

func TestRenku_Validate_Quiet_SuppressesProgress(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "clip.yaml", "meta:\n  id: clip\n")

	var out bytes.Buffer
	_, err := app.New(&out).Validate(context.Background(), path, app.ValidateOptions{Quiet: true})
	require.NoError(t, err)

	assert.Empty(t, out.String())
}
