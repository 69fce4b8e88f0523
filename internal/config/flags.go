package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

const flagSetName = "nts-client"

// ParseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-host NTS-KE server host (may also be given as the first positional argument)
//	-port NTS-KE server port
//	-cert PEM certificate bundle used as trust anchor
//	-strict-cert fail when -cert cannot be loaded
//	-4/-ipv4 force IPv4
//	-6/-ipv6 force IPv6
//	-ke-timeout NTS-KE timeout (e.g., "10s")
//	-ntp-timeout NTP response timeout (e.g., "5s")
//	-log-level log level (debug, info, warn, error)
//	-c/-config JSON or YAML file path with configs
//
// Usage and parse errors are written to os.Stderr. flag.ErrHelp is
// returned unchanged when -h is given.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args, os.Stderr)
}

func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var host, port, certFile string
	var strictCert, ipv4, ipv6 bool
	var keTimeout, ntpTimeout time.Duration
	var logLevel string
	var configPath string

	fs := flag.NewFlagSet(flagSetName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [host]\n", flagSetName)
		fs.PrintDefaults()
	}

	fs.StringVar(&host, "host", "", "NTS-KE server host")
	fs.StringVar(&port, "port", "", "NTS-KE server port")
	fs.StringVar(&certFile, "cert", "", "PEM certificate bundle used as trust anchor")
	fs.BoolVar(&strictCert, "strict-cert", false, "Fail when the -cert bundle cannot be loaded")
	fs.BoolVar(&ipv4, "ipv4", false, "Force IPv4")
	fs.BoolVar(&ipv4, "4", false, "Force IPv4 (alias)")
	fs.BoolVar(&ipv6, "ipv6", false, "Force IPv6")
	fs.BoolVar(&ipv6, "6", false, "Force IPv6 (alias)")
	fs.DurationVar(&keTimeout, "ke-timeout", 0, "NTS-KE timeout (e.g., 10s)")
	fs.DurationVar(&ntpTimeout, "ntp-timeout", 0, "NTP response timeout (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if host == "" && fs.NArg() > 0 {
		host = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArguments, fs.Args()[1:])
	}

	return &StructuredConfig{
		KE: KE{
			Host:       host,
			Port:       port,
			CertFile:   certFile,
			StrictCert: strictCert,
			IPv4:       ipv4,
			IPv6:       ipv6,
			Timeout:    keTimeout,
		},
		NTP: NTP{
			Timeout: ntpTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		ConfigFile: configPath,
	}, nil
}
