package config

// File is the decoded form of an advisor configuration file.
type File struct {
	DataFile string       `hcl:"data_file,optional"`
	Log      *LogBlock    `hcl:"log,block"`
	Output   *OutputBlock `hcl:"output,block"`
}

// LogBlock configures the structured logger.
type LogBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// OutputBlock configures how listings and descriptions are rendered.
type OutputBlock struct {
	Format string `hcl:"format,optional"`
	Accent string `hcl:"accent,optional"`
}
