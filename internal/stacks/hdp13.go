package stacks

import "github.com/danieljhkim/stack-select/internal/selection"

// HDP13Stack returns the 1.3 stack.
// MapReduce v1 on mandatory HDFS; ZooKeeper, HCatalog and WebHCat are hidden
// and follow HBase/Hive.
func HDP13Stack() *Stack {
	return &Stack{
		Name:        "HDP-1.3",
		Version:     "1.3.2",
		Description: "Hadoop 1 stack: HDFS + MapReduce, Hive/HCatalog, HBase, Pig, Oozie",
		Services: []ServiceDef{
			{Name: selection.HDFS, DisplayName: "HDFS", Selected: true, Selectable: true, Disabled: true},
			{Name: selection.MapReduce, DisplayName: "MapReduce", Selected: true, Selectable: true},
			{Name: selection.Nagios, DisplayName: "Nagios", Selected: true, Selectable: true},
			{Name: selection.Ganglia, DisplayName: "Ganglia", Selected: true, Selectable: true},
			{Name: selection.Hive, DisplayName: "Hive + HCatalog", Selected: true, Selectable: true},
			{Name: selection.HCatalog, DisplayName: "HCatalog", Selected: true},
			{Name: selection.WebHCat, DisplayName: "WebHCat", Selected: true},
			{Name: selection.HBase, DisplayName: "HBase", Selected: true, Selectable: true},
			{Name: selection.Pig, DisplayName: "Pig", Selected: true, Selectable: true},
			{Name: "SQOOP", DisplayName: "Sqoop", Selected: true, Selectable: true},
			{Name: selection.Oozie, DisplayName: "Oozie", Selected: true, Selectable: true},
			{Name: selection.ZooKeeper, DisplayName: "ZooKeeper", Selected: true},
		},
	}
}
