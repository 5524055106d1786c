// Package selection holds the service selection rules of the install wizard:
// dependency derivation for hidden services, aggregate selection predicates,
// and classification of the action a user must resolve before continuing.
//
// The rules never add or remove records and never keep a reference to the
// collection between calls. Callers re-run DeriveDependencies after every
// mutation of a Selected flag.
package selection

// mapReduceDependents are the services that need MapReduce when selected.
var mapReduceDependents = []string{Pig, Oozie, Hive}

// Validator applies the version-gated dependency rules for one stack version.
type Validator struct {
	stackVersion *Version
	sticky       bool
}

// NewValidator creates a validator for the given stack version.
func NewValidator(stackVersion string) (*Validator, error) {
	v, err := ParseStackVersion(stackVersion)
	if err != nil {
		return nil, err
	}
	threshold, err := ParseStackVersion(zooKeeperStickyVersion)
	if err != nil {
		return nil, err
	}
	return &Validator{
		stackVersion: v,
		sticky:       v.Compare(threshold) >= 0,
	}, nil
}

// StackVersion returns the stack version as given.
func (v *Validator) StackVersion() string {
	return v.stackVersion.String()
}

// DeriveDependencies updates the selection of ZOOKEEPER, HCATALOG and WEBHCAT
// from HBASE and HIVE. It does nothing until all five records are present.
//
// Before stack 2.0 ZooKeeper follows HBase or Hive exactly. From 2.0 on it
// only follows HBase while unselected, so a selected ZooKeeper stays selected.
// HCatalog and WebHCat always mirror Hive.
func (v *Validator) DeriveDependencies(records Records) {
	hbase := records.Find(HBase)
	zookeeper := records.Find(ZooKeeper)
	hive := records.Find(Hive)
	hcatalog := records.Find(HCatalog)
	webhcat := records.Find(WebHCat)

	if hbase == nil || zookeeper == nil || hive == nil || hcatalog == nil || webhcat == nil {
		return
	}

	if !v.sticky {
		zookeeper.Selected = hbase.Selected || hive.Selected
	} else if !zookeeper.Selected {
		zookeeper.Selected = hbase.Selected
	}
	hcatalog.Selected = hive.Selected
	webhcat.Selected = hive.Selected
}

// SubmitDisabled reports whether no selected service is still uninstalled.
func (rs Records) SubmitDisabled() bool {
	for _, r := range rs {
		if r.Selected && !r.Installed {
			return false
		}
	}
	return true
}

// AllSelected reports whether every selectable record is selected.
func (rs Records) AllSelected() bool {
	for _, r := range rs {
		if r.CanBeSelected && !r.Selected {
			return false
		}
	}
	return true
}

// MinimumSelected reports whether every record that is not disabled is
// unselected.
func (rs Records) MinimumSelected() bool {
	for _, r := range rs {
		if !r.Disabled && r.Selected {
			return false
		}
	}
	return true
}

// SelectAll selects every selectable record.
func (rs Records) SelectAll() {
	for _, r := range rs {
		if r.CanBeSelected {
			r.Selected = true
		}
	}
}

// SelectMinimum unselects every record that is not disabled.
func (rs Records) SelectMinimum() {
	for _, r := range rs {
		if !r.Disabled {
			r.Selected = false
		}
	}
}

// NeedToAddMapReduce reports whether MapReduce is present but unselected
// while Pig, Oozie or Hive is selected.
func (rs Records) NeedToAddMapReduce() bool {
	mapreduce := rs.Find(MapReduce)
	if mapreduce == nil || mapreduce.Selected {
		return false
	}
	for _, name := range mapReduceDependents {
		if r := rs.Find(name); r != nil && r.Selected {
			return true
		}
	}
	return false
}

// NeedToAddHDFS reports whether neither HDFS nor HCFS is selected.
// HCFS is optional; HDFS must be present.
func (rs Records) NeedToAddHDFS() (bool, error) {
	hdfs, err := rs.requireHDFS()
	if err != nil {
		return false, err
	}
	if hdfs.Selected {
		return false, nil
	}
	hcfs := rs.Find(HCFS)
	return hcfs == nil || !hcfs.Selected, nil
}

// MultipleDFSs reports whether both HDFS and HCFS are selected.
func (rs Records) MultipleDFSs() (bool, error) {
	hdfs, err := rs.requireHDFS()
	if err != nil {
		return false, err
	}
	hcfs := rs.Find(HCFS)
	return hdfs.Selected && hcfs != nil && hcfs.Selected, nil
}
