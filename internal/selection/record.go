package selection

import (
	"errors"
	"fmt"
	"strings"
)

// Service names referenced by the selection rules.
const (
	HBase     = "HBASE"
	ZooKeeper = "ZOOKEEPER"
	Hive      = "HIVE"
	HCatalog  = "HCATALOG"
	WebHCat   = "WEBHCAT"
	MapReduce = "MAPREDUCE"
	HDFS      = "HDFS"
	HCFS      = "HCFS"
	Pig       = "PIG"
	Oozie     = "OOZIE"
	Ganglia   = "GANGLIA"
	Nagios    = "NAGIOS"
)

var (
	// ErrCatalogIntegrity is returned when a record the rules cannot work
	// without is absent from the collection.
	ErrCatalogIntegrity = errors.New("service catalog integrity violation")

	// ErrDuplicateService is returned when two records share a service name.
	ErrDuplicateService = errors.New("duplicate service")
)

// Record is the selection state of one installable service.
type Record struct {
	Name          string // Unique service identifier (e.g., "HDFS")
	DisplayName   string // Presentation only, never read by the rules
	Selected      bool   // Mutable by the caller and by dependency derivation
	Installed     bool   // Set at load time
	CanBeSelected bool   // Participates in select-all
	Disabled      bool   // Excluded from select-minimum
}

// Records is an ordered, caller-owned collection of service records.
type Records []*Record

// Find returns the record with the given service name, or nil.
func (rs Records) Find(name string) *Record {
	for _, r := range rs {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Names returns the service names in collection order.
func (rs Records) Names() []string {
	names := make([]string, 0, len(rs))
	for _, r := range rs {
		names = append(names, r.Name)
	}
	return names
}

// Validate checks that every record has a non-empty, unique service name.
func (rs Records) Validate() error {
	seen := make(map[string]struct{}, len(rs))
	for i, r := range rs {
		if r == nil {
			return fmt.Errorf("record %d is nil", i)
		}
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("record %d has no service name", i)
		}
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateService, r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	return nil
}

// requireHDFS returns the HDFS record or an integrity error. HDFS is the one
// lookup the rules do not tolerate missing.
func (rs Records) requireHDFS() (*Record, error) {
	hdfs := rs.Find(HDFS)
	if hdfs == nil {
		return nil, fmt.Errorf("%w: %s record not found", ErrCatalogIntegrity, HDFS)
	}
	return hdfs, nil
}
