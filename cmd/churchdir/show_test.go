package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/nkgc/churchdir"
	main "github.com/nkgc/churchdir/cmd/churchdir"
	"github.com/nkgc/churchdir/mock"
	"github.com/nkgc/churchdir/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders the entries of an import", func(t *testing.T) {
		t.Parallel()

		imports := &mock.ImportService{
			FindImportByIDFn: func(_ context.Context, id string) (*churchdir.Import, error) {
				return &churchdir.Import{
					ID:           id,
					SourceURL:    "https://example.com/members",
					WorkbookPath: "members_list.xlsx",
					CreatedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
				}, nil
			},
			FindEntriesFn: func(_ context.Context, importID string) ([]*churchdir.Entry, error) {
				assert.Equal(t, "imp-1", importID)
				return []*churchdir.Entry{
					churchdir.NewCategoryEntry("수원시찰"),
					churchdir.NewContactEntry(&churchdir.Contact{Name: "김은혜", ChurchName: "은혜교회", PostalCode: "16455"}),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Imports:  imports,
			Renderer: table.NewRenderer(),
		}

		err := (&main.ShowCmd{ID: "imp-1"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "https://example.com/members")
		assert.Contains(t, output, "1 contacts")
		assert.Contains(t, output, "--수원시찰--")
		assert.Contains(t, output, "은혜교회")
		assert.Contains(t, output, "16455")
	})

	t.Run("reports unknown import", func(t *testing.T) {
		t.Parallel()

		imports := &mock.ImportService{
			FindImportByIDFn: func(_ context.Context, _ string) (*churchdir.Import, error) {
				return nil, churchdir.Errorf(churchdir.ENOTFOUND, "import not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Imports:  imports,
			Renderer: table.NewRenderer(),
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, churchdir.ENOTFOUND, churchdir.ErrorCode(err))
		assert.Contains(t, stderr.String(), `import "missing" not found`)
		assert.Empty(t, stdout.String())
	})
}
