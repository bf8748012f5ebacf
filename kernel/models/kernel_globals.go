package models

type Config struct {
	IpKernel           string `json:"ip_kernel" yaml:"ip_kernel"`
	PortKernel         int    `json:"port_kernel" yaml:"port_kernel"`
	SchedulerAlgorithm string `json:"scheduler_algorithm" yaml:"scheduler_algorithm"`
	LogLevel           string `json:"log_level" yaml:"log_level"`
	LogPath            string `json:"log_path" yaml:"log_path"`
	MaxTicks           uint   `json:"max_ticks" yaml:"max_ticks"`
	MaxPrio            int    `json:"max_prio" yaml:"max_prio"`
	NrResources        int    `json:"nr_resources" yaml:"nr_resources"`
	Quiet              bool   `json:"quiet" yaml:"quiet"`
}

var KernelConfig *Config

// DefaultConfig son los valores que se usan cuando el archivo no trae alguno.
func DefaultConfig() *Config {
	return &Config{
		IpKernel:           "127.0.0.1",
		PortKernel:         8001,
		SchedulerAlgorithm: "FCFS",
		LogLevel:           "INFO",
		MaxTicks:           100000,
		MaxPrio:            MaxPrio,
		NrResources:        NrResources,
	}
}

// ApplyDefaults completa los campos vacíos con DefaultConfig.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.IpKernel == "" {
		c.IpKernel = defaults.IpKernel
	}
	if c.PortKernel == 0 {
		c.PortKernel = defaults.PortKernel
	}
	if c.SchedulerAlgorithm == "" {
		c.SchedulerAlgorithm = defaults.SchedulerAlgorithm
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.MaxTicks == 0 {
		c.MaxTicks = defaults.MaxTicks
	}
	if c.MaxPrio == 0 {
		c.MaxPrio = defaults.MaxPrio
	}
	if c.NrResources == 0 {
		c.NrResources = defaults.NrResources
	}
}
