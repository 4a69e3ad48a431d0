// Package config defines the setup configuration for one measurement: which
// detector, which measurement identifier, where the source sits, and which
// assemblies to build. Configurations are HCL files loaded with Load.
package config
