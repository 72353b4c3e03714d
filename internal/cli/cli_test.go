package cli_test

import (
	"bytes"
	"context"
	"errors"
	"starlight/config"
	kafkaMocks "starlight/infras/kafka/mocks"
	"starlight/infras/otel/mocks"
	"starlight/internal/cli"
	"starlight/internal/domains/diagram/catalog"
	diagram "starlight/internal/domains/diagram/service"
	"starlight/internal/domains/journal/model"
	"starlight/internal/domains/journal/repository"
	journal "starlight/internal/domains/journal/service"
	"starlight/shared/kvstore"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const visitor = "6f1c2a9e-0d4b-4c84-9a55-3f1e2b7c8d90"

func newDeps(t *testing.T) cli.Deps {
	t.Helper()

	color.NoColor = true

	ctrl := gomock.NewController(t)
	notifier := kafkaMocks.NewMockClient(ctrl)
	notifier.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Journal.Namespace = "starlight_bookings"

	j := journal.New(repository.New(kvstore.NewMemory(), mocks.NewOtel()), notifier, cfg, mocks.NewOtel())

	c, err := catalog.Default()
	require.NoError(t, err)

	return cli.Deps{Journal: j, Diagram: diagram.New(j, c, cfg, mocks.NewOtel())}
}

func run(t *testing.T, deps cli.Deps, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := cli.New(&out, func(context.Context, cli.Options) (cli.Deps, error) { return deps, nil })
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestJournalList(t *testing.T) {
	deps := newDeps(t)
	ctx := context.Background()

	require.NoError(t, deps.Journal.Append(ctx, visitor, model.Record{
		Fields:  map[string]string{"name": "Asha", "email": "asha@example.com", "dob": "1990-01-01"},
		Created: "2026-01-01T10:00:00Z",
	}))
	require.NoError(t, deps.Journal.Append(ctx, visitor, model.Record{
		Fields:      map[string]string{"name": "Ravi", "email": "ravi@example.com"},
		SubmittedAt: "2026-01-02T10:00:00Z",
		SavedAt:     "2026-01-02T10:00:15Z",
	}))

	out, err := run(t, deps, "journal", "list", visitor)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Status")
	assert.Contains(t, lines[1], "Asha")
	assert.Contains(t, lines[1], "quick")
	assert.Contains(t, lines[2], "Ravi")
	assert.Contains(t, lines[2], "saved locally")
}

func TestJournalListEmpty(t *testing.T) {
	out, err := run(t, newDeps(t), "journal", "list", visitor)
	require.NoError(t, err)
	assert.Contains(t, out, "No bookings for "+visitor)
}

func TestJournalLatest(t *testing.T) {
	deps := newDeps(t)

	require.NoError(t, deps.Journal.Append(context.Background(), visitor, model.Record{
		Fields:  map[string]string{"name": "Asha"},
		Created: "T1",
	}))

	out, err := run(t, deps, "journal", "latest", visitor)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Asha","created":"T1"}`, strings.TrimSpace(out))
}

func TestJournalRequiresVisitor(t *testing.T) {
	_, err := run(t, newDeps(t), "journal", "list")
	assert.Error(t, err)
}

func TestDiagramSVG(t *testing.T) {
	out, err := run(t, newDeps(t), "diagram")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Equal(t, 12, strings.Count(out, "data-house="))
}

func TestDiagramHouse(t *testing.T) {
	deps := newDeps(t)

	require.NoError(t, deps.Journal.Append(context.Background(), visitor, model.Record{
		Fields:  map[string]string{"name": "Asha"},
		Created: "T1",
	}))

	out, err := run(t, deps, "diagram", "house", "7", "--for", visitor)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "House 7:"))
	assert.Contains(t, out, "Marriage, close collaborators and open rivals.")
	assert.Contains(t, out, "For: Asha")

	_, err = run(t, deps, "diagram", "house", "seven")
	assert.Error(t, err)
}

func TestLoaderError(t *testing.T) {
	var out bytes.Buffer

	boom := errors.New("no store")
	cmd := cli.New(&out, func(context.Context, cli.Options) (cli.Deps, error) { return cli.Deps{}, boom })
	cmd.SetArgs([]string{"journal", "latest", visitor})

	assert.ErrorIs(t, cmd.ExecuteContext(context.Background()), boom)
}

func TestVersion(t *testing.T) {
	out, err := run(t, cli.Deps{}, "version", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
	assert.Contains(t, out, cli.Version)
}
