package churchdir_test

import (
	"testing"

	"github.com/nkgc/churchdir"
	"github.com/stretchr/testify/assert"
)

func TestImport_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		imp := &churchdir.Import{WorkbookPath: "members_list.xlsx"}

		err := imp.Validate()
		assert.Equal(t, churchdir.EINVALID, churchdir.ErrorCode(err))
	})

	t.Run("requires workbook path", func(t *testing.T) {
		t.Parallel()

		imp := &churchdir.Import{SourceURL: "http://example.com"}

		err := imp.Validate()
		assert.Equal(t, churchdir.EINVALID, churchdir.ErrorCode(err))
	})

	t.Run("accepts complete import", func(t *testing.T) {
		t.Parallel()

		imp := &churchdir.Import{SourceURL: "http://example.com", WorkbookPath: "members_list.xlsx"}

		assert.NoError(t, imp.Validate())
	})
}
