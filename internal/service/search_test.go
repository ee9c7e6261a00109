package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avtomaster/workshop/internal/store"
)

func TestFindByMisspelledName(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	_, err := s.AddClient(store.ClientFields{Name: "Ivan Petrov", Phone: "+7 900 123 45 67"})
	require.NoError(t, err)
	_, err = s.AddClient(store.ClientFields{Name: "Olga Sidorova", Phone: "+7 900 765 43 21"})
	require.NoError(t, err)

	cs := &ClientSearch{Store: s}

	got := cs.Find("ivan petrof")
	require.Len(t, got, 1)
	require.Equal(t, "Ivan Petrov", got[0].Client.Name)
	require.Greater(t, got[0].Score, 0.8)
}

func TestFindByPhoneFragment(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	_, err := s.AddClient(store.ClientFields{Name: "Ivan Petrov", Phone: "+7 900 123 45 67"})
	require.NoError(t, err)

	cs := &ClientSearch{Store: s}

	got := cs.Find("123 45")
	require.Len(t, got, 1)
	require.Equal(t, 1.0, got[0].Score)
}

func TestFindEmptyQueryReturnsAll(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	_, err := s.AddClient(store.ClientFields{Name: "Ivan"})
	require.NoError(t, err)
	_, err = s.AddClient(store.ClientFields{Name: "Olga"})
	require.NoError(t, err)

	got := (&ClientSearch{Store: s}).Find("  ")
	require.Len(t, got, 2)
	require.Equal(t, "Ivan", got[0].Client.Name, "registry order")
}

func TestFindRejectsDistantNames(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	_, err := s.AddClient(store.ClientFields{Name: "Ivan Petrov"})
	require.NoError(t, err)

	require.Empty(t, (&ClientSearch{Store: s}).Find("zzzzzzzz"))
}
