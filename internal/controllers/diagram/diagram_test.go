package diagram_test

import (
	"context"
	"errors"
	"starlight/config"
	kafkaMocks "starlight/infras/kafka/mocks"
	"starlight/infras/otel/mocks"
	"starlight/internal/controllers/diagram"
	"starlight/internal/domains/diagram/catalog"
	diagramModel "starlight/internal/domains/diagram/model"
	"starlight/internal/domains/diagram/model/dto"
	"starlight/internal/domains/diagram/service"
	journalModel "starlight/internal/domains/journal/model"
	"starlight/internal/domains/journal/repository"
	journal "starlight/internal/domains/journal/service"
	"starlight/internal/modal"
	"starlight/internal/page"
	"starlight/shared/failure"
	"starlight/shared/kvstore"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const owner = "visitor-1"

const markup = `<html><body><section><div data-role="diagram" class="wheel"></div></section></body></html>`

type fixture struct {
	doc       *page.Document
	presenter *modal.Presenter
	journal   journal.Journal
	svc       service.Diagram
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := kafkaMocks.NewMockClient(ctrl)
	notifier.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Journal.Namespace = "starlight_bookings"

	j := journal.New(repository.New(kvstore.NewMemory(), mocks.NewOtel()), notifier, cfg, mocks.NewOtel())

	c, err := catalog.Default()
	require.NoError(t, err)

	doc, err := page.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	return fixture{
		doc:       doc,
		presenter: modal.New(doc),
		journal:   j,
		svc:       service.New(j, c, cfg, mocks.NewOtel()),
	}
}

func (f fixture) install(t *testing.T) {
	t.Helper()

	require.NoError(t, diagram.Install(context.Background(), f.doc, f.svc, f.presenter, owner))
}

func (f fixture) modalText() string {
	if f.presenter.Active() == nil {
		return ""
	}

	return page.Text(f.presenter.Active())
}

func TestInstallBuildsTwelveSectors(t *testing.T) {
	f := newFixture(t)
	f.install(t)

	sectors := diagram.Sectors(f.doc)
	require.Len(t, sectors, diagramModel.Houses)

	for i, s := range sectors {
		house, _ := page.Attr(s, diagram.AttrHouse)
		assert.Equal(t, strings.TrimSpace(page.Text(s)), house)
		assert.Equal(t, i+1, mustAtoi(t, house))
	}

	f.install(t)
	assert.Len(t, diagram.Sectors(f.doc), diagramModel.Houses)
}

func TestClickShowsPersonalizedDetail(t *testing.T) {
	f := newFixture(t)
	f.install(t)

	require.NoError(t, f.journal.Append(context.Background(), owner, journalModel.Record{
		Fields:  map[string]string{"name": "Asha", "email": "a@x.com", "dob": "1990-01-01"},
		Created: "T1",
	}))

	fifth := diagram.Sectors(f.doc)[4]

	_, err := f.doc.Dispatch(context.Background(), f.doc.Key(fifth), &page.Event{Type: "click"})
	require.NoError(t, err)

	text := f.modalText()
	assert.Contains(t, text, "House 5: Creativity & romance")
	assert.Contains(t, text, "Play, self-expression, children and the affairs of the heart.")
	assert.Contains(t, text, "For: Asha")
}

func TestSecondSectorReplacesModal(t *testing.T) {
	f := newFixture(t)
	f.install(t)

	sectors := diagram.Sectors(f.doc)

	for _, s := range []int{0, 6} {
		_, err := f.doc.Dispatch(context.Background(), f.doc.Key(sectors[s]), &page.Event{Type: "click"})
		require.NoError(t, err)
	}

	assert.Len(t, f.doc.AllByRole(modal.RoleModal), 1)
	assert.Contains(t, f.modalText(), "House 7: Partnerships")
	assert.NotContains(t, f.modalText(), "For:")
}

func TestKeyboardActivation(t *testing.T) {
	tests := []struct {
		key    string
		opened bool
	}{
		{key: "Enter", opened: true},
		{key: " ", opened: true},
		{key: "Spacebar", opened: true},
		{key: "Tab", opened: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f := newFixture(t)
			f.install(t)

			ev := &page.Event{Type: "keydown", Key: tt.key}
			_, err := f.doc.Dispatch(context.Background(), f.doc.Key(diagram.Sectors(f.doc)[0]), ev)
			require.NoError(t, err)

			assert.Equal(t, tt.opened, f.presenter.Active() != nil)
			assert.Equal(t, tt.opened, ev.DefaultPrevented())
		})
	}
}

func TestInstallWithoutMount(t *testing.T) {
	f := newFixture(t)

	doc, err := page.Parse(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)

	assert.NoError(t, diagram.Install(context.Background(), doc, f.svc, modal.New(doc), owner))
}

type brokenDiagram struct{ service.Diagram }

func (brokenDiagram) SVG(context.Context) (string, error) {
	return "", errors.New("geometry unavailable")
}

func (brokenDiagram) Detail(context.Context, string, int) (dto.HouseDetail, error) {
	return dto.HouseDetail{}, errors.New("unreachable")
}

func TestInstallRenderError(t *testing.T) {
	f := newFixture(t)

	err := diagram.Install(context.Background(), f.doc, brokenDiagram{}, f.presenter, owner)

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindRender))
	assert.Empty(t, diagram.Sectors(f.doc))

	_, built := page.Attr(f.doc.ByRole(diagram.RoleDiagram), diagram.AttrBuilt)
	assert.False(t, built)
}

func mustAtoi(t *testing.T, raw string) int {
	t.Helper()

	house, err := service.ParseHouse(raw)
	require.NoError(t, err)

	return house
}
