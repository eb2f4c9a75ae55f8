// Package config loads a YAML tuning profile for the chart engine and
// its demo host. A profile overrides only the fields it names; everything
// else keeps the stock defaults, and a missing file is not an error:
// hosts run fine on defaults alone.
package config
