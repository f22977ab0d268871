package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtErsin/perfume/internal/catalog"
	"github.com/KurtErsin/perfume/internal/config"
	"github.com/KurtErsin/perfume/pkg/models"
)

// run executes the root command in an empty directory so no stray
// perfume.yaml is picked up.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Perfume")
}

func TestQueryCommand_Text(t *testing.T) {
	out, err := run(t, "query", "--search", "chanel")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 3 perfumes in 1 brand")
	assert.Contains(t, out, "Chanel (3)")
}

func TestQueryCommand_JSON(t *testing.T) {
	out, err := run(t, "query", "--search", "chanel", "--json")
	require.NoError(t, err)

	var res catalog.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, "Chanel", res.Groups[0].Brand)
}

func TestQueryCommand_Filters(t *testing.T) {
	out, err := run(t, "query", "--gender", "female", "--note", "floral", "--json")
	require.NoError(t, err)

	var res catalog.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	for _, p := range res.Perfumes() {
		assert.Contains(t, []models.Gender{models.GenderFemale, models.GenderUnisex}, p.Gender)
		assert.True(t, p.HasNote(models.NoteFloral))
	}
}

func TestQueryCommand_UnknownGender(t *testing.T) {
	_, err := run(t, "query", "--gender", "robot")
	assert.Error(t, err)
}

func TestRecommendCommand(t *testing.T) {
	out, err := run(t, "recommend", "bleu-de-chanel")
	require.NoError(t, err)
	assert.Contains(t, out, "Similar to Bleu de Chanel by Chanel:")
}

func TestRecommendCommand_JSON(t *testing.T) {
	out, err := run(t, "recommend", "bleu-de-chanel", "--json")
	require.NoError(t, err)

	var recs []models.Perfume
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	assert.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), catalog.DefaultRecommendLimit)
	for _, p := range recs {
		assert.NotEqual(t, "bleu-de-chanel", p.Slug)
	}
}

func TestRecommendCommand_UnknownSlug(t *testing.T) {
	_, err := run(t, "recommend", "does-not-exist")
	assert.ErrorContains(t, err, "not found")
}

func TestRecommendCommand_RequiresSlug(t *testing.T) {
	_, err := run(t, "recommend")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog OK:")
	assert.Contains(t, out, "0 shop links")
}

func TestCheckCommand_WithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfume.yaml")
	cfg := "shop:\n  links:\n    \"1\": https://shop.example.com/products/one\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	out, err := run(t, "check", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 shop links")
}

func TestCheckCommand_BadShopLink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfume.yaml")
	cfg := "shop:\n  links:\n    \"1\": not-a-url\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	_, err := run(t, "check", "--config", path)
	assert.Error(t, err)
}

func TestCheckCommand_UnknownShopID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfume.yaml")
	cfg := "shop:\n  links:\n    \"no-such-id\": https://shop.example.com/products/x\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	_, err := run(t, "check", "--config", path)
	assert.ErrorContains(t, err, "unknown perfume id")
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(config.Log{Level: "debug", Development: true})
	assert.NoError(t, err)
	_, err = newLogger(config.Log{Level: "loud"})
	assert.Error(t, err)
}
