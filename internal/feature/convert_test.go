package feature

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bddtools/bddconv/internal/model"
)

func conversionTree() *model.Suite {
	return &model.Suite{
		Name:      "Root",
		ID:        "s1",
		LongName:  "Root",
		TestCount: 1,
		Suites: []*model.Suite{
			{Name: "Grouping", ID: "s1-s1", LongName: "Root.Grouping", TestCount: 1, Suites: []*model.Suite{
				{
					Name:      "Login Suite",
					ID:        "s1-s1-s1",
					LongName:  "Root.Grouping.Login Suite",
					TestCount: 1,
					Tests: []*model.Test{
						{
							Name: "Successful login",
							Tags: []string{"smoke"},
							Body: []*model.Keyword{call("Open Browser", "chrome")},
						},
					},
				},
			}},
		},
	}
}

// Files are emitted only for suites owning direct tests; grouping-only
// suites leave nothing behind.
func TestConvertEmitsPerSuiteWithTests(t *testing.T) {
	t.Chdir(t.TempDir())

	conv := NewConverter("", "")
	doc, err := conv.Convert(conversionTree())
	require.NoError(t, err)

	_, err = os.Stat("Login_Suite.feature")
	assert.NoError(t, err)
	_, err = os.Stat("Root.feature")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat("Grouping.feature")
	assert.True(t, os.IsNotExist(err))

	emitted := conv.Emitted()
	require.Len(t, emitted, 1)
	assert.Equal(t, "Login Suite", emitted[0].Suite)

	assert.Equal(t, "Root", doc.Title)
	assert.NotEmpty(t, doc.RunID)
	assert.Positive(t, doc.Generated)
	require.NotNil(t, doc.Suite)
	assert.Equal(t, "s1", doc.Suite.ID)
}

func TestConvertTitleOverride(t *testing.T) {
	t.Chdir(t.TempDir())

	conv := NewConverter("", "Release_Smoke_Run")
	doc, err := conv.Convert(conversionTree())
	require.NoError(t, err)

	assert.Equal(t, "Release Smoke Run", doc.Title)
}

// Two runs over the same tree produce byte-identical feature files.
func TestConvertIdempotent(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := NewConverter("", "").Convert(conversionTree())
	require.NoError(t, err)
	first, err := os.ReadFile("Login_Suite.feature")
	require.NoError(t, err)

	_, err = NewConverter("", "").Convert(conversionTree())
	require.NoError(t, err)
	second, err := os.ReadFile("Login_Suite.feature")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
