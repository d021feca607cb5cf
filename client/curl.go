package client

import (
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand builds a copy-pasteable equivalent of a request for the debug
// log, so a failing exchange can be replayed by hand.
func curlCommand(method, url string, body []byte) string {
	var cmd commandBuilder
	cmd.add("curl", "-s", "-X", method)
	if body != nil {
		cmd.add("-H", "Content-Type: application/json", "-d", string(body))
	}
	cmd.add(url)
	return cmd.String()
}
