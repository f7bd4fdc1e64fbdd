// Package config defines the advisor's configuration file model and the HCL
// loader that reads it.
//
// A configuration file looks like:
//
//	data_file = "${env.HOME}/abcu/courses.csv"
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	output {
//	  format = "yaml"
//	  accent = "99"
//	}
//
// Every attribute is optional. The `env` object exposes the process
// environment to expressions. Values from the file sit between the built-in
// defaults and command-line flags; the merge itself happens in package app.
package config
