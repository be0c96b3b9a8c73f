package config

type (
	//TableCfg is the container for other table config sections
	TableCfg struct {
		Log  LogTableCfg
		Leak LeakTableCfg
		Meta MetaTableCfg
	}

	//LogTableCfg contains the configuration for logging
	LogTableCfg struct {
		LogTable string `default:"logs"`
	}

	//LeakTableCfg names the collection holding leak reports
	LeakTableCfg struct {
		LeakTable string `default:"leaks"`
	}

	//MetaTableCfg contains the meta db collection names
	MetaTableCfg struct {
		RunsTable string `default:"runs"`
	}
)
