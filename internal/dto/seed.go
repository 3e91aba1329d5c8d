package dto

// Settings is the decoded form of a composer configuration file.
// It uses "mapstructure" tags so YAML and TOML share one set of keys.
type Settings struct {
	LogLevel string `json:"log_level" mapstructure:"log_level"`
	Rich     bool   `json:"rich" mapstructure:"rich"`
	// NoBanner suppresses the startup banner.
	NoBanner bool `json:"no_banner" mapstructure:"no_banner"`

	Composition *CompositionSeed `json:"composition" mapstructure:"composition"`
}

// CompositionSeed describes the composition a session starts with.
type CompositionSeed struct {
	Name       string          `json:"name" mapstructure:"name"`
	Components []ComponentSeed `json:"components" mapstructure:"components"`
}

// ComponentSeed declares one component with its ports and runnables.
type ComponentSeed struct {
	Name      string         `json:"name" mapstructure:"name"`
	Type      string         `json:"type" mapstructure:"type"`
	Ports     []PortSeed     `json:"ports" mapstructure:"ports"`
	Runnables []RunnableSeed `json:"runnables" mapstructure:"runnables"`
}

// PortSeed declares a port; Direction is "sender" or "receiver".
type PortSeed struct {
	Name      string `json:"name" mapstructure:"name"`
	Direction string `json:"direction" mapstructure:"direction"`
}

// RunnableSeed declares a runnable. Period is set only for periodic triggers.
type RunnableSeed struct {
	Name    string `json:"name" mapstructure:"name"`
	Trigger string `json:"trigger" mapstructure:"trigger"`
	// Period may be written as a number; weak decoding turns it into text.
	Period string `json:"period" mapstructure:"period"`
}
