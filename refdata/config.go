package refdata

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/marketdatahq/blpdata-go/blp"
)

// fileOpts is the TOML shape of a client config file.
type fileOpts struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Service string `toml:"service"`
	Verbose bool   `toml:"verbose"`
}

// ClientOptsFromFile loads client options from a TOML file. Fields absent
// from the file keep the same environment variable and default handling as
// NewClient.
func ClientOptsFromFile(path string) (ClientOpts, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ClientOpts{}, err
	}
	var f fileOpts
	if err := toml.Unmarshal(b, &f); err != nil {
		return ClientOpts{}, err
	}
	return ClientOpts{
		Session: blp.SessionOptions{Host: f.Host, Port: f.Port},
		Service: f.Service,
		Verbose: f.Verbose,
	}, nil
}
