package kanban

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal-board-api/internal/domain"
)

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	items := []*card{
		newCard("Audiencia inicial", domain.StatusPending),
		newCard("reunion semanal", domain.StatusPending),
	}

	got := Filter(items, Criteria{Search: "audiencia"})

	require.Len(t, got, 1)
	assert.Equal(t, "Audiencia inicial", got[0].text)
}

func TestFilter_SearchFoldsAccents(t *testing.T) {
	items := []*card{
		newCard("REVISIÓN de pruebas", domain.StatusPending),
		newCard("Revision general", domain.StatusPending),
	}

	got := Filter(items, Criteria{Search: "revisión"})

	require.Len(t, got, 1)
	assert.Equal(t, "REVISIÓN de pruebas", got[0].text)
}

func TestFilter_DateUsesUTCProjection(t *testing.T) {
	match := newCard("a", domain.StatusPending)
	match.when = at("2024-03-01T14:30:00Z")
	miss := newCard("b", domain.StatusPending)
	miss.when = at("2024-03-02T00:00:01Z")
	shifted := newCard("c", domain.StatusPending)
	shifted.when = at("2024-02-29T22:00:00-05:00")
	undated := newCard("d", domain.StatusPending)

	got := Filter([]*card{match, miss, shifted, undated}, Criteria{Date: "2024-03-01"})

	require.Len(t, got, 2)
	assert.Same(t, match, got[0])
	assert.Same(t, shifted, got[1])
}

func TestFilter_ResponsableExactMatch(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	mine := newCard("a", domain.StatusPending)
	mine.owner = &owner
	theirs := newCard("b", domain.StatusDone)
	theirs.owner = &other
	nobody := newCard("c", domain.StatusDone)

	got := Filter([]*card{mine, theirs, nobody}, Criteria{ResponsableID: &owner})

	require.Len(t, got, 1)
	assert.Same(t, mine, got[0])
}

func TestFilter_Conjunction(t *testing.T) {
	owner := uuid.New()
	a := newCard("Audiencia de pruebas", domain.StatusPending)
	a.owner = &owner
	a.when = at("2024-05-10T09:00:00Z")
	b := newCard("Audiencia de pruebas", domain.StatusPending)
	b.owner = &owner
	b.when = at("2024-05-11T09:00:00Z")
	c := newCard("Audiencia de pruebas", domain.StatusPending)
	c.when = at("2024-05-10T09:00:00Z")

	got := Filter([]*card{a, b, c}, Criteria{Search: "pruebas", ResponsableID: &owner, Date: "2024-05-10"})

	require.Len(t, got, 1)
	assert.Same(t, a, got[0])
}

func TestCriteria_Validate(t *testing.T) {
	assert.NoError(t, Criteria{}.Validate())
	assert.NoError(t, Criteria{Date: "2024-03-01"}.Validate())

	err := Criteria{Date: "01/03/2024"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCriteria_Equal(t *testing.T) {
	id := uuid.New()
	same := id
	other := uuid.New()

	assert.True(t, Criteria{}.Equal(Criteria{}))
	assert.True(t, Criteria{ResponsableID: &id}.Equal(Criteria{ResponsableID: &same}))
	assert.False(t, Criteria{ResponsableID: &id}.Equal(Criteria{ResponsableID: &other}))
	assert.False(t, Criteria{ResponsableID: &id}.Equal(Criteria{}))
	assert.False(t, Criteria{Search: "a"}.Equal(Criteria{Search: "b"}))
}
