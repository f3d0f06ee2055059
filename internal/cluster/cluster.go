// Package cluster partitions time-ordered images into temporal clusters.
//
// A cluster is a maximal run of images whose consecutive modification times
// are no more than a caller-supplied gap apart. The grouping pass is pure and
// deterministic: it never touches the filesystem, so callers can plan movie
// outputs without invoking any external tool.
package cluster

import "time"

// Image is a single discovered image file and its modification time.
type Image struct {
	Path    string
	ModTime time.Time
}

// Group is an ordered, non-empty run of time-adjacent images.
type Group struct {
	Images []Image
}

// Start returns the modification time of the first image in the group.
func (g Group) Start() time.Time {
	return g.Images[0].ModTime
}

// End returns the modification time of the last image in the group.
func (g Group) End() time.Time {
	return g.Images[len(g.Images)-1].ModTime
}

// Span returns the time covered by the group.
func (g Group) Span() time.Duration {
	return g.End().Sub(g.Start())
}

// Cluster splits images into groups wherever the gap between consecutive
// modification times exceeds maxGap. A gap exactly equal to maxGap stays
// within the group. Input must already be sorted ascending by ModTime;
// scan.Images returns it that way.
func Cluster(images []Image, maxGap time.Duration) []Group {
	if len(images) == 0 {
		return nil
	}

	groups := make([]Group, 0, 1)
	current := Group{Images: []Image{images[0]}}
	for _, img := range images[1:] {
		last := current.Images[len(current.Images)-1]
		if img.ModTime.Sub(last.ModTime) <= maxGap {
			current.Images = append(current.Images, img)
			continue
		}
		groups = append(groups, current)
		current = Group{Images: []Image{img}}
	}
	return append(groups, current)
}
