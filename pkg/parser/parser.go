// Package parser reads knapsack instances from text. Each non-empty line is
//
//	id n capacity w1 p1 w2 p2 ... wn pn
//
// Lines starting with '#' are comments.
package parser

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/elchead/knapsack-solver/pkg/knapsack"
	"github.com/pkg/errors"
)

var ErrMalformed = errors.New("malformed instance")

func ParseFile(path string) ([]knapsack.Knapsack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open instance file")
	}
	defer f.Close()
	res, err := Parse(f)
	return res, errors.Wrap(err, path)
}

func Parse(r io.Reader) ([]knapsack.Knapsack, error) {
	var res []knapsack.Knapsack
	scanner := bufio.NewScanner(r)
	lineNbr := 0
	for scanner.Scan() {
		lineNbr++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNbr)
		}
		res = append(res, k)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read instances")
	}
	return res, nil
}

func ParseLine(line string) (knapsack.Knapsack, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return knapsack.Knapsack{}, errors.Wrapf(ErrMalformed, "expected id, item count and capacity, got %d fields", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil || id < 0 {
		return knapsack.Knapsack{}, errors.Wrapf(ErrMalformed, "id %q", fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return knapsack.Knapsack{}, errors.Wrapf(ErrMalformed, "item count %q", fields[1])
	}
	if n > knapsack.MaxItems {
		return knapsack.Knapsack{}, errors.Wrapf(knapsack.ErrTooManyItems, "knapsack %d: %d items", id, n)
	}
	capacity, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return knapsack.Knapsack{}, errors.Wrapf(ErrMalformed, "capacity %q", fields[2])
	}
	if len(fields) != 3+2*n {
		return knapsack.Knapsack{}, errors.Wrapf(ErrMalformed, "%d items need %d values, got %d", n, 2*n, len(fields)-3)
	}

	items := make([]knapsack.Item, n)
	for i := range items {
		w, err := strconv.ParseUint(fields[3+2*i], 10, 16)
		if err != nil {
			return knapsack.Knapsack{}, errors.Wrapf(ErrMalformed, "weight of item %d: %q", i, fields[3+2*i])
		}
		p, err := strconv.ParseUint(fields[4+2*i], 10, 16)
		if err != nil {
			return knapsack.Knapsack{}, errors.Wrapf(ErrMalformed, "price of item %d: %q", i, fields[4+2*i])
		}
		items[i] = knapsack.NewItem(uint16(w), uint16(p))
	}
	return knapsack.New(id, uint32(capacity), items...)
}
