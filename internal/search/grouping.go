package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kozaktomas/photo-gallery/internal/feed"
	"github.com/kozaktomas/photo-gallery/internal/geo"
)

// Grouping modes. GPS modes cluster by proximity at a fixed radius.
const (
	GroupNone   = "none"
	GroupYear   = "year"
	GroupMonth  = "month"
	GroupDay    = "day"
	GroupCamera = "camera"
)

// gpsGroupRadii maps the GPS grouping modes to their radius in kilometers.
var gpsGroupRadii = map[string]float64{
	"gps1km":   1,
	"gps5km":   5,
	"gps10km":  10,
	"gps50km":  50,
	"gps100km": 100,
}

// GroupModes lists every valid grouping mode in display order.
func GroupModes() []string {
	return []string{
		GroupNone, GroupYear, GroupMonth, GroupDay, GroupCamera,
		"gps1km", "gps5km", "gps10km", "gps50km", "gps100km",
	}
}

// applyGrouping stamps every record with its transient (GroupIndex,
// GroupName) annotation for the chosen mode. Previous annotations are
// overwritten wholesale; they are never persisted.
func applyGrouping(records []*feed.Record, mode string) {
	if radius, ok := gpsGroupRadii[mode]; ok {
		groupByProximity(records, radius)
		return
	}
	switch mode {
	case GroupCamera:
		groupByCamera(records)
	default:
		groupByDateBucket(records, mode)
	}
}

// groupByDateBucket handles none/year/month/day. All records share group
// index 0 so these modes only label records; the chronological ordering
// still comes from the sort stage. Labels are sliced out of the pretty
// exposure timestamp ("Sat Apr 25 2020 6:38:59 PM").
func groupByDateBucket(records []*feed.Record, mode string) {
	for _, r := range records {
		r.GroupIndex = 0
		r.GroupName = dateBucketLabel(r.ExposureTimePretty, mode)
	}
}

func dateBucketLabel(pretty, mode string) string {
	tokens := strings.Fields(pretty)
	if len(tokens) < 4 {
		return ""
	}
	switch mode {
	case GroupYear:
		return tokens[3]
	case GroupMonth:
		return tokens[1] + " " + tokens[3]
	case GroupDay:
		return strings.Join(tokens[:4], " ")
	}
	return ""
}

// groupByCamera partitions records by exact camera string. Real groups are
// indexed in descending order of size (ties keep encounter order); records
// without camera metadata share a single sentinel group that sorts last.
func groupByCamera(records []*feed.Record) {
	type group struct {
		members []*feed.Record
	}
	byCamera := make(map[string]*group)
	var order []*group

	for _, r := range records {
		if r.Camera == "" {
			r.GroupIndex = feed.UngroupedIndex
			r.GroupName = "No Camera Metadata"
			continue
		}
		g := byCamera[r.Camera]
		if g == nil {
			g = &group{}
			byCamera[r.Camera] = g
			order = append(order, g)
		}
		g.members = append(g.members, r)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return len(order[i].members) > len(order[j].members)
	})
	for idx, g := range order {
		for _, r := range g.members {
			r.GroupIndex = int64(idx)
			r.GroupName = r.Camera
		}
	}
}

// gpsCluster tracks a running centroid so membership follows the cluster as
// it grows.
type gpsCluster struct {
	sumLat, sumLon float64
	members        []*feed.Record
}

func (c *gpsCluster) centroid() (float64, float64) {
	n := float64(len(c.members))
	return c.sumLat / n, c.sumLon / n
}

func (c *gpsCluster) add(r *feed.Record) {
	c.sumLat += *r.Lat
	c.sumLon += *r.Lon
	c.members = append(c.members, r)
}

// groupByProximity is a greedy single-pass clustering: each record joins the
// nearest existing cluster whose live centroid is within the radius, or
// seeds a new one. Deliberately a streaming approximation, not an optimal
// clustering; O(n·k) for k clusters formed.
func groupByProximity(records []*feed.Record, radiusKm float64) {
	var clusters []*gpsCluster

	for _, r := range records {
		if !r.HasGPS() {
			r.GroupIndex = feed.UngroupedIndex
			r.GroupName = "No Coordinate"
			continue
		}

		var nearest *gpsCluster
		nearestDist := 0.0
		for _, c := range clusters {
			lat, lon := c.centroid()
			d := geo.DistanceKm(*r.Lat, *r.Lon, lat, lon)
			if d <= radiusKm && (nearest == nil || d < nearestDist) {
				nearest = c
				nearestDist = d
			}
		}
		if nearest != nil {
			nearest.add(r)
			continue
		}
		fresh := &gpsCluster{}
		fresh.add(r)
		clusters = append(clusters, fresh)
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return len(clusters[i].members) > len(clusters[j].members)
	})
	for idx, c := range clusters {
		lat, lon := c.centroid()
		label := fmt.Sprintf("%.6f, %.6f", lat, lon)
		for _, r := range c.members {
			r.GroupIndex = int64(idx)
			r.GroupName = label
		}
	}
}
