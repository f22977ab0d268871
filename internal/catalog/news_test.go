package catalog

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtErsin/perfume/internal/testutil"
	"github.com/KurtErsin/perfume/pkg/models"
)

func newsEntries() []models.Perfume {
	var out []models.Perfume
	genders := []models.Gender{models.GenderMale, models.GenderFemale, models.GenderUnisex}
	for i := 0; i < 8; i++ {
		out = append(out, testutil.NewPerfume(
			testutil.WithID(strconv.Itoa(i)),
			testutil.WithName("New "+strconv.Itoa(i)),
			testutil.WithBrand("House"),
			testutil.WithGender(genders[i%3]),
			testutil.New(),
		))
	}
	out = append(out, testutil.NewPerfume(testutil.WithID("old"), testutil.WithName("Old")))
	return out
}

func TestNewArrivals_All(t *testing.T) {
	res := NewArrivals(newsEntries(), NewsQuery{})

	assert.Equal(t, 8, res.Total)
	assert.Equal(t, 8, res.Matched)
	require.Len(t, res.Featured, FeaturedNewCount)
	assert.Equal(t, "0", res.Featured[0].ID)
	assert.Equal(t, "Showing 8 of 8 new arrivals", res.Summary())
	assert.NotContains(t, ids(res.Items), "old")
}

func TestNewArrivals_GenderIsExact(t *testing.T) {
	res := NewArrivals(newsEntries(), NewsQuery{Gender: models.GenderMale})
	for _, p := range res.Items {
		assert.Equal(t, models.GenderMale, p.Gender)
	}
	assert.Equal(t, []string{"0", "3", "6"}, ids(res.Items))
	assert.Len(t, res.Featured, FeaturedNewCount, "featured ignores the local filters")
}

func TestNewArrivals_Search(t *testing.T) {
	res := NewArrivals(newsEntries(), NewsQuery{Search: "  new 7 "})
	assert.Equal(t, []string{"7"}, ids(res.Items))

	res = NewArrivals(newsEntries(), NewsQuery{Search: "HOUSE"})
	assert.Equal(t, 8, res.Matched, "search matches brand")
}

func TestFeatured(t *testing.T) {
	entries := newsEntries()
	assert.Len(t, Featured(entries, 4), 4)
	assert.Len(t, Featured(entries, 100), len(entries))
	assert.Empty(t, Featured(entries, -1))
}

func TestTrendingNotes(t *testing.T) {
	entries := []models.Perfume{
		testutil.NewPerfume(testutil.WithNotes(models.NoteAmber, models.NoteRose)),
		testutil.NewPerfume(testutil.WithNotes(models.NoteRose, models.NoteWoody)),
		testutil.NewPerfume(testutil.WithNotes(models.NoteRose, models.NoteAmber)),
		testutil.NewPerfume(testutil.WithNotes(models.NoteOud)),
	}
	got := TrendingNotes(entries, 3)
	assert.Equal(t, []NoteCount{
		{Note: models.NoteRose, Count: 3},
		{Note: models.NoteAmber, Count: 2},
		{Note: models.NoteWoody, Count: 1},
	}, got)

	assert.Empty(t, TrendingNotes(nil, 4))
}
