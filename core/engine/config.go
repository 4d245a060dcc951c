package engine

// Config holds configuration for the inventory engine binary.
type Config struct {
	// Binary is the path to the engine executable.
	Binary string `mapstructure:"binary" default:"./library_cli"`
	// Dir is the working directory for invocations. The engine keeps its
	// data file relative to this directory.
	Dir string `mapstructure:"dir" default:"."`
	// TimeoutSeconds bounds a single invocation.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
