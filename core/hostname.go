package core

import (
	"os"

	"github.com/pkg/errors"
)

// hostnameFunc is swapped out in tests.
var hostnameFunc = os.Hostname

// ResolveHostname returns hostname when it is non-empty and the local
// machine's hostname otherwise.
func ResolveHostname(hostname string) (string, error) {
	if hostname != "" {
		return hostname, nil
	}
	h, err := hostnameFunc()
	if err != nil {
		return "", errors.Wrap(err, "resolving local hostname")
	}
	return h, nil
}
