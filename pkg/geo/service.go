package geo

import (
	"context"
	"fmt"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/zone"
)

// Polygon is a zone boundary as an ordered list of [lng, lat] pairs.
type Polygon = [][]float64

// Service validates zone boundaries and detects overlaps between zones.
type Service struct {
	client *ent.Client
}

// NewService creates a new geo service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// ValidateBoundary reports whether a polygon is usable as a zone boundary:
// at least three vertices, every vertex a [lng, lat] pair within range.
func ValidateBoundary(polygon Polygon) bool {
	if len(polygon) < 3 {
		return false
	}

	for _, pt := range polygon {
		if len(pt) != 2 {
			return false
		}
		lng, lat := pt[0], pt[1]
		if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
			return false
		}
	}

	return true
}

type boundingBox struct {
	minLng, minLat, maxLng, maxLat float64
}

func boxOf(polygon Polygon) boundingBox {
	box := boundingBox{
		minLng: polygon[0][0], maxLng: polygon[0][0],
		minLat: polygon[0][1], maxLat: polygon[0][1],
	}
	for _, pt := range polygon[1:] {
		if pt[0] < box.minLng {
			box.minLng = pt[0]
		}
		if pt[0] > box.maxLng {
			box.maxLng = pt[0]
		}
		if pt[1] < box.minLat {
			box.minLat = pt[1]
		}
		if pt[1] > box.maxLat {
			box.maxLat = pt[1]
		}
	}
	return box
}

func (b boundingBox) intersects(other boundingBox) bool {
	return b.minLng <= other.maxLng && b.maxLng >= other.minLng &&
		b.minLat <= other.maxLat && b.maxLat >= other.minLat
}

// FindOverlaps returns zones whose boundary overlaps the given polygon.
// Overlap is evaluated at bounding-box granularity, which is conservative:
// it may report near-misses but never misses a true overlap.
func (s *Service) FindOverlaps(ctx context.Context, polygon Polygon, excludeZoneID int) ([]*ent.Zone, error) {
	if !ValidateBoundary(polygon) {
		return nil, fmt.Errorf("invalid boundary polygon")
	}

	query := s.client.Zone.Query()
	if excludeZoneID > 0 {
		query = query.Where(zone.IDNEQ(excludeZoneID))
	}

	zones, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}

	box := boxOf(polygon)

	var overlapping []*ent.Zone
	for _, z := range zones {
		if len(z.Boundary) < 3 {
			continue
		}
		if box.intersects(boxOf(z.Boundary)) {
			overlapping = append(overlapping, z)
		}
	}

	return overlapping, nil
}
