package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// bvQueryType mirrors original_source's BVQueryType enum.
type bvQueryType int

const (
	bvInsert bvQueryType = iota
	bvDelete
	bvFlip
	bvRank
	bvSelect
)

func bvQueryTypeFromString(s string) (bvQueryType, error) {
	switch s {
	case "insert":
		return bvInsert, nil
	case "delete":
		return bvDelete, nil
	case "flip":
		return bvFlip, nil
	case "rank":
		return bvRank, nil
	case "select":
		return bvSelect, nil
	default:
		return 0, errors.Errorf("unknown bv query type %q", s)
	}
}

// bvQueryTypeHasSecondArg mirrors bv_query_type_has_second_arg: insert
// takes a position and a bit, rank/select take a bit/rank and a
// position/k, delete/flip take only a position.
func bvQueryTypeHasSecondArg(t bvQueryType) bool {
	switch t {
	case bvInsert, bvRank, bvSelect:
		return true
	default:
		return false
	}
}

// bvQuery is one parsed query line. For insert, first=position,
// second=bit (0/1). For delete/flip, first=position. For rank/select,
// first=bit (0/1), second=position or rank k.
type bvQuery struct {
	typ    bvQueryType
	first  int
	second int
}

// parseBVInput reads spec §6.2's bv input format: a line with the
// initial bit count, that many 0/1 lines, then query lines.
func parseBVInput(path string) (initial []bool, queries []bvQuery, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening bv input")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, nil, errors.New("bv input: missing initial size line")
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, nil, errors.Wrap(err, "bv input: malformed initial size")
	}

	initial = make([]bool, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, nil, errors.New("bv input: file ended before initial bits were fully read")
		}
		bit, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, nil, errors.Wrap(err, "bv input: malformed initial bit")
		}
		initial = append(initial, bit != 0)
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		typ, err := bvQueryTypeFromString(fields[0])
		if err != nil {
			return nil, nil, errors.Wrap(err, "bv input: malformed query")
		}
		if len(fields) < 2 {
			return nil, nil, errors.Errorf("bv input: query %q missing first argument", line)
		}
		first, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "bv input: malformed first argument in %q", line)
		}
		q := bvQuery{typ: typ, first: first}
		if bvQueryTypeHasSecondArg(typ) {
			if len(fields) < 3 {
				return nil, nil, errors.Errorf("bv input: query %q missing second argument", line)
			}
			second, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "bv input: malformed second argument in %q", line)
			}
			q.second = second
		}
		queries = append(queries, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading bv input")
	}
	return initial, queries, nil
}
