package service_test

import (
	"context"
	"errors"
	"starlight/config"
	kafkaMocks "starlight/infras/kafka/mocks"
	"starlight/infras/otel/mocks"
	"starlight/internal/domains/diagram/catalog"
	"starlight/internal/domains/diagram/model/dto"
	"starlight/internal/domains/diagram/service"
	journalMocks "starlight/internal/domains/journal/mocks"
	journalModel "starlight/internal/domains/journal/model"
	"starlight/internal/domains/journal/repository"
	journal "starlight/internal/domains/journal/service"
	"starlight/shared/failure"
	"starlight/shared/kvstore"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newJournal(t *testing.T, repo repository.Journal) journal.Journal {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := kafkaMocks.NewMockClient(ctrl)
	notifier.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Journal.Namespace = "starlight_bookings"

	return journal.New(repo, notifier, cfg, mocks.NewOtel())
}

func newService(t *testing.T, j journal.Journal) service.Diagram {
	t.Helper()

	c, err := catalog.Default()
	require.NoError(t, err)

	return service.New(j, c, &config.Config{}, mocks.NewOtel())
}

func TestDetailPersonalized(t *testing.T) {
	ctx := context.Background()
	j := newJournal(t, repository.New(kvstore.NewMemory(), mocks.NewOtel()))

	require.NoError(t, j.Append(ctx, "visitor-1", journalModel.Record{
		Fields:  map[string]string{"name": "Asha", "email": "a@x.com", "dob": "1990-01-01"},
		Created: "T1",
	}))

	svc := newService(t, j)

	detail, err := svc.Detail(ctx, "visitor-1", 5)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"House 5: Creativity & romance",
		"Play, self-expression, children and the affairs of the heart.",
		"For: Asha",
	}, detail.Lines())
	assert.InDelta(t, 30, detail.StartAngle, 1e-9)
}

func TestDetailWithoutJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := journalMocks.NewMockJournal(ctrl)
	repo.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage disabled"))

	svc := newService(t, newJournal(t, repo))

	detail, err := svc.Detail(context.Background(), "visitor-1", 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"House 7: Partnerships", "Marriage, close collaborators and open rivals."}, detail.Lines())
}

func TestDetailInvalidHouse(t *testing.T) {
	svc := newService(t, newJournal(t, repository.New(kvstore.NewMemory(), mocks.NewOtel())))

	for _, house := range []int{0, 13, -1} {
		_, err := svc.Detail(context.Background(), "", house)
		assert.True(t, failure.IsKind(err, failure.KindValidation), "house %d", house)
	}
}

func TestSVG(t *testing.T) {
	svc := newService(t, newJournal(t, repository.New(kvstore.NewMemory(), mocks.NewOtel())))

	svg, err := svc.SVG(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Equal(t, 12, strings.Count(svg, `class="house"`))
	assert.Contains(t, svg, `data-house="12"`)
	assert.Contains(t, svg, `text-anchor="middle"`)
	assert.Contains(t, svg, `>12</text>`)
	assert.Contains(t, svg, `fill="#1d2247"`)
	assert.Contains(t, svg, `fill="#2b3266"`)
	assert.Contains(t, svg, "Values &amp; possessions")
}

func TestParseHouse(t *testing.T) {
	house, err := service.ParseHouse(" 9 ")
	require.NoError(t, err)
	assert.Equal(t, 9, house)

	for _, raw := range []string{"", "zero", "13", "0"} {
		_, err := service.ParseHouse(raw)
		assert.Error(t, err, raw)
	}
}

func TestHouseDetailLines(t *testing.T) {
	d := dto.HouseDetail{}
	d.House = 3
	d.Title = "Communication"

	assert.Equal(t, []string{"House 3: Communication"}, d.Lines())

	d.Summary = "Everyday speech, learning, siblings and short journeys."
	d.For = "Asha"

	assert.Equal(t, []string{
		"House 3: Communication",
		"Everyday speech, learning, siblings and short journeys.",
		"For: Asha",
	}, d.Lines())
}
