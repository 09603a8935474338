package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "organic", want: CategoryOrganic},
		{in: "Organic", want: CategoryOrganic},
		{in: "organik", want: CategoryOrganic},
		{in: "INORGANIC", want: CategoryInorganic},
		{in: "Anorganik", want: CategoryInorganic},
		{in: "", want: CategoryUnselected},
		{in: "metal", want: CategoryUnselected, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCategory)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryText(t *testing.T) {
	assert.Equal(t, "Inorganic", CategoryInorganic.String())
	assert.Equal(t, "organic", CategoryOrganic.ID())
	assert.False(t, CategoryUnselected.IsSelected())
	assert.True(t, CategoryOrganic.IsSelected())
	assert.Equal(t, []Category{CategoryOrganic, CategoryInorganic}, Categories())

	text, err := CategoryInorganic.MarshalText()
	require.NoError(t, err)

	var c Category
	require.NoError(t, c.UnmarshalText(text))
	assert.Equal(t, CategoryInorganic, c)
}
