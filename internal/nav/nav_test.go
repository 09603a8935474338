package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator(t *testing.T) {
	t.Run("starts at main", func(t *testing.T) {
		n := New()
		assert.Equal(t, RouteMain, n.Current())
		assert.Equal(t, 1, n.Depth())
	})

	t.Run("main to about and back", func(t *testing.T) {
		n := New()

		require.NoError(t, n.NavigateTo(RouteAbout))
		assert.Equal(t, RouteAbout, n.Current())
		assert.Equal(t, []Route{RouteMain, RouteAbout}, n.History())

		assert.True(t, n.NavigateBack())
		assert.Equal(t, RouteMain, n.Current())
	})

	t.Run("back at root is refused", func(t *testing.T) {
		n := New()
		assert.False(t, n.NavigateBack())
		assert.Equal(t, RouteMain, n.Current())
	})

	t.Run("navigating to current route does not grow history", func(t *testing.T) {
		n := New()
		require.NoError(t, n.NavigateTo(RouteAbout))
		require.NoError(t, n.NavigateTo(RouteAbout))
		assert.Equal(t, 2, n.Depth())
	})

	t.Run("unknown route", func(t *testing.T) {
		n := New()
		err := n.NavigateTo(Route(42))
		require.ErrorIs(t, err, ErrUnknownRoute)
		assert.Equal(t, 1, n.Depth())
	})
}

func TestParseRoute(t *testing.T) {
	r, err := ParseRoute("about")
	require.NoError(t, err)
	assert.Equal(t, RouteAbout, r)
	assert.Equal(t, "about", r.String())

	r, err = ParseRoute("main")
	require.NoError(t, err)
	assert.Equal(t, RouteMain, r)

	_, err = ParseRoute("settings")
	assert.ErrorIs(t, err, ErrUnknownRoute)
}
