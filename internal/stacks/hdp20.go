package stacks

import "github.com/danieljhkim/stack-select/internal/selection"

// HDP20Stack returns the 2.0 stack.
// YARN + MapReduce2 on HDFS, or on a compatible file system (HCFS) instead.
// ZooKeeper is selectable and stays selected once chosen.
func HDP20Stack() *Stack {
	return &Stack{
		Name:        "HDP-2.0",
		Version:     "2.0.6",
		Description: "Hadoop 2 stack: HDFS or HCFS + YARN/MapReduce2, Hive/HCatalog, HBase, Pig, Oozie",
		Services: []ServiceDef{
			{Name: selection.HDFS, DisplayName: "HDFS", Selected: true, Selectable: true},
			{Name: selection.HCFS, DisplayName: "HCFS", Selectable: true},
			{Name: "YARN", DisplayName: "YARN + MapReduce2", Selected: true, Selectable: true},
			{Name: selection.Nagios, DisplayName: "Nagios", Selected: true, Selectable: true},
			{Name: selection.Ganglia, DisplayName: "Ganglia", Selected: true, Selectable: true},
			{Name: selection.Hive, DisplayName: "Hive + HCatalog", Selected: true, Selectable: true},
			{Name: selection.HCatalog, DisplayName: "HCatalog", Selected: true},
			{Name: selection.WebHCat, DisplayName: "WebHCat", Selected: true},
			{Name: selection.HBase, DisplayName: "HBase", Selected: true, Selectable: true},
			{Name: selection.Pig, DisplayName: "Pig", Selected: true, Selectable: true},
			{Name: "SQOOP", DisplayName: "Sqoop", Selected: true, Selectable: true},
			{Name: selection.Oozie, DisplayName: "Oozie", Selected: true, Selectable: true},
			{Name: selection.ZooKeeper, DisplayName: "ZooKeeper", Selected: true, Selectable: true},
		},
	}
}
