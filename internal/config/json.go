package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the configuration file.
// The same struct is decoded from JSON and YAML.
type StructuredFileConfig struct {
	KE struct {
		Host       string   `json:"host" yaml:"host"`
		Port       string   `json:"port" yaml:"port"`
		CertFile   string   `json:"cert" yaml:"cert"`
		StrictCert bool     `json:"strict_cert" yaml:"strict_cert"`
		IPv4       bool     `json:"ipv4" yaml:"ipv4"`
		IPv6       bool     `json:"ipv6" yaml:"ipv6"`
		Timeout    Duration `json:"timeout" yaml:"timeout"`
	} `json:"ke,omitempty" yaml:"ke,omitempty"`

	NTP struct {
		Timeout Duration `json:"timeout" yaml:"timeout"`
	} `json:"ntp,omitempty" yaml:"ntp,omitempty"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg StructuredFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		KE: KE{
			Host:       f.KE.Host,
			Port:       f.KE.Port,
			CertFile:   f.KE.CertFile,
			StrictCert: f.KE.StrictCert,
			IPv4:       f.KE.IPv4,
			IPv6:       f.KE.IPv6,
			Timeout:    time.Duration(f.KE.Timeout),
		},
		NTP: NTP{
			Timeout: time.Duration(f.NTP.Timeout),
		},
		Log: Log{
			Level: f.Log.Level,
		},
		ConfigFile: "",
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
