package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readRequests returns args when present. Otherwise it reads a count line followed
// by that many request lines from r.
func readRequests(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("expected a request count on the first line")
	}
	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || count <= 0 {
		return nil, fmt.Errorf("invalid request count %q", sc.Text())
	}
	out := make([]string, 0, count)
	for len(out) < count && sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) < count {
		return nil, fmt.Errorf("expected %d requests, got %d", count, len(out))
	}
	return out, nil
}
