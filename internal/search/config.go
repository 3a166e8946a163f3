package search

import "os"

// CaseSensitiveEnv is the environment variable whose presence turns on
// case-insensitive matching. The value is never inspected.
const CaseSensitiveEnv = "CASE_SENSITIVE"

// LookupEnvFunc matches the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// Config holds the parameters of a single search.
// It is built once per invocation and not modified afterwards.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// NewConfig builds a Config from a process argument list, where args[0] is
// the program name, args[1] the query and args[2] the filename. Anything
// past args[2] is ignored. The file is not checked here.
//
// lookupEnv is consulted for CaseSensitiveEnv; nil means os.LookupEnv.
func NewConfig(args []string, lookupEnv LookupEnvFunc) (*Config, error) {
	if len(args) < 3 {
		return nil, invalidArguments()
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	_, present := lookupEnv(CaseSensitiveEnv)

	return &Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: !present,
	}, nil
}

// Mode returns a short label for the matching mode, used in diagnostics.
func (c *Config) Mode() string {
	if c.CaseSensitive {
		return "case-sensitive"
	}
	return "case-insensitive"
}
