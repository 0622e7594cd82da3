package geo

import (
	"testing"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/enttest"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBoundary(t *testing.T) {
	tests := []struct {
		name    string
		polygon Polygon
		want    bool
	}{
		{
			name:    "valid triangle",
			polygon: Polygon{{-122.42, 37.77}, {-122.41, 37.77}, {-122.41, 37.78}},
			want:    true,
		},
		{
			name:    "two points is not a polygon",
			polygon: Polygon{{-122.42, 37.77}, {-122.41, 37.77}},
			want:    false,
		},
		{
			name:    "empty",
			polygon: Polygon{},
			want:    false,
		},
		{
			name:    "malformed vertex",
			polygon: Polygon{{-122.42, 37.77}, {-122.41}, {-122.41, 37.78}},
			want:    false,
		},
		{
			name:    "longitude out of range",
			polygon: Polygon{{-190, 37.77}, {-122.41, 37.77}, {-122.41, 37.78}},
			want:    false,
		},
		{
			name:    "latitude out of range",
			polygon: Polygon{{-122.42, 95}, {-122.41, 37.77}, {-122.41, 37.78}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateBoundary(tt.polygon))
		})
	}
}

func TestFindOverlaps(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:geo_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)
	defer client.Close()
	ctx := t.Context()

	creator, err := client.User.Create().
		SetEmail("admin@knockbase.io").
		SetPasswordHash("hashed").
		SetName("Admin").
		Save(ctx)
	require.NoError(t, err)

	// Unit square at the origin
	existing, err := client.Zone.Create().
		SetName("Origin Block").
		SetCreatedByUserID(creator.ID).
		SetBoundary([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}).
		Save(ctx)
	require.NoError(t, err)

	// A zone with no boundary never collides
	_, err = client.Zone.Create().
		SetName("Unbounded").
		SetCreatedByUserID(creator.ID).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(client)

	t.Run("overlapping box collides", func(t *testing.T) {
		overlaps, err := svc.FindOverlaps(ctx, Polygon{{0.5, 0.5}, {2, 0.5}, {2, 2}, {0.5, 2}}, 0)
		require.NoError(t, err)
		require.Len(t, overlaps, 1)
		assert.Equal(t, existing.ID, overlaps[0].ID)
	})

	t.Run("disjoint box is clear", func(t *testing.T) {
		overlaps, err := svc.FindOverlaps(ctx, Polygon{{5, 5}, {6, 5}, {6, 6}, {5, 6}}, 0)
		require.NoError(t, err)
		assert.Empty(t, overlaps)
	})

	t.Run("excluded zone is skipped", func(t *testing.T) {
		overlaps, err := svc.FindOverlaps(ctx, Polygon{{0.5, 0.5}, {2, 0.5}, {2, 2}, {0.5, 2}}, existing.ID)
		require.NoError(t, err)
		assert.Empty(t, overlaps)
	})

	t.Run("invalid polygon is rejected", func(t *testing.T) {
		_, err := svc.FindOverlaps(ctx, Polygon{{0, 0}}, 0)
		assert.Error(t, err)
	})
}
