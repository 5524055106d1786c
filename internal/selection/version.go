package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// zooKeeperStickyVersion is the first stack version where a selected
// ZooKeeper is no longer turned off by dependency derivation.
const zooKeeperStickyVersion = "2.0"

var errNoNumericPrefix = errors.New("version must start with a number")

// Version is a stack version such as "1.3.2", "2.0.6.0" or
// "2.0.6.GlusterFS". Only the leading numeric dot-segments are compared.
// Parsing stops at the first segment that is not purely numeric, so a
// flavor suffix like "GlusterFS" is ignored. Missing segments count as zero.
type Version struct {
	core     *semver.Version // First three segments
	extra    []uint64        // Segments after patch, e.g. the build in "2.0.6.0"
	original string
}

// ParseStackVersion parses a stack version. The first segment must be a
// number.
func ParseStackVersion(v string) (*Version, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, fmt.Errorf("stack version required")
	}

	nums, err := numericSegments(v)
	if err != nil {
		return nil, fmt.Errorf("invalid stack version %q: %w", v, err)
	}
	for len(nums) < 3 {
		nums = append(nums, 0)
	}

	return &Version{
		core:     semver.New(nums[0], nums[1], nums[2], "", ""),
		extra:    nums[3:],
		original: v,
	}, nil
}

// numericSegments returns the leading numeric dot-segments of v. A segment
// with digits followed by other characters ("6GlusterFS") contributes its
// digits and ends the scan.
func numericSegments(v string) ([]uint64, error) {
	var nums []uint64
	for _, seg := range strings.Split(v, ".") {
		end := 0
		for end < len(seg) && seg[end] >= '0' && seg[end] <= '9' {
			end++
		}
		if end == 0 {
			break
		}
		n, err := strconv.ParseUint(seg[:end], 10, 64)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
		if end < len(seg) {
			break
		}
	}
	if len(nums) == 0 {
		return nil, errNoNumericPrefix
	}
	return nums, nil
}

// Compare returns -1, 0 or 1.
func (v *Version) Compare(o *Version) int {
	if c := v.core.Compare(o.core); c != 0 {
		return c
	}
	for i := 0; i < max(len(v.extra), len(o.extra)); i++ {
		a, b := segmentAt(v.extra, i), segmentAt(o.extra, i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// String returns the version as it was given.
func (v *Version) String() string {
	return v.original
}

func segmentAt(segs []uint64, i int) uint64 {
	if i < len(segs) {
		return segs[i]
	}
	return 0
}

// CompareVersions compares two stack versions and returns -1, 0 or 1.
func CompareVersions(a, b string) (int, error) {
	va, err := ParseStackVersion(a)
	if err != nil {
		return 0, err
	}
	vb, err := ParseStackVersion(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}
