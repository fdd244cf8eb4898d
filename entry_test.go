package churchdir_test

import (
	"testing"

	"github.com/nkgc/churchdir"
	"github.com/stretchr/testify/assert"
)

func TestEntry_Cells(t *testing.T) {
	t.Parallel()

	t.Run("category marker fills first column only", func(t *testing.T) {
		t.Parallel()

		e := churchdir.NewCategoryEntry("Region A")

		assert.True(t, e.IsCategory())
		assert.Equal(t, []string{"--Region A--", "", "", "", "", "", ""}, e.Cells())
	})

	t.Run("contact cells follow header order", func(t *testing.T) {
		t.Parallel()

		e := churchdir.NewContactEntry(&churchdir.Contact{
			PhotoURL:   "https://example.com/a.png",
			Name:       "Hong",
			ChurchName: "은혜교회",
			PostalCode: "12345",
			Address:    "Main St",
			Phone:      "010-1111-2222",
			Email:      "hong@example.com",
		})

		assert.False(t, e.IsCategory())
		cells := e.Cells()
		assert.Len(t, cells, len(churchdir.Headers))
		assert.Equal(t, []string{
			"https://example.com/a.png", "Hong", "은혜교회", "12345", "Main St", "010-1111-2222", "hong@example.com",
		}, cells)
	})
}

func TestCountContacts(t *testing.T) {
	t.Parallel()

	entries := []*churchdir.Entry{
		churchdir.NewCategoryEntry("Region A"),
		churchdir.NewContactEntry(&churchdir.Contact{Name: "a"}),
		churchdir.NewContactEntry(&churchdir.Contact{Name: "b"}),
	}

	assert.Equal(t, 2, churchdir.CountContacts(entries))
	assert.Zero(t, churchdir.CountContacts(nil))
}
