package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// bpQueryType mirrors original_source's BPQueryType enum.
type bpQueryType int

const (
	bpDeleteNode bpQueryType = iota
	bpInsertChild
	bpChild
	bpSubtreeSize
	bpParent
)

func bpQueryTypeFromString(s string) (bpQueryType, error) {
	switch s {
	case "deletenode":
		return bpDeleteNode, nil
	case "insertchild":
		return bpInsertChild, nil
	case "child":
		return bpChild, nil
	case "subtree_size":
		return bpSubtreeSize, nil
	case "parent":
		return bpParent, nil
	default:
		return 0, errors.Errorf("unknown bp query type %q", s)
	}
}

// bpQueryTypeHasSecondArg mirrors bp_query_type_has_second_arg: only
// insertchild and child take a second argument (the child index).
func bpQueryTypeHasSecondArg(t bpQueryType) bool {
	return t == bpInsertChild || t == bpChild
}

// bpQueryTypeHasThirdArg mirrors bp_query_type_has_third_arg: only
// insertchild takes a third argument (how many children to regroup).
func bpQueryTypeHasThirdArg(t bpQueryType) bool {
	return t == bpInsertChild
}

// bpQuery is one parsed query line. first is always the target node;
// second is a child index (child/insertchild); third is the group size
// k (insertchild only).
type bpQuery struct {
	typ    bpQueryType
	first  int
	second int
	third  int
}

// parseBPInput reads spec §6.3's bp input format: query lines only, no
// initial-tree section — every tree starts as just its root.
func parseBPInput(path string) ([]bpQuery, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening bp input")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	var queries []bpQuery
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		typ, err := bpQueryTypeFromString(fields[0])
		if err != nil {
			return nil, errors.Wrap(err, "bp input: malformed query")
		}
		if len(fields) < 2 {
			return nil, errors.Errorf("bp input: query %q missing first argument", line)
		}
		first, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "bp input: malformed first argument in %q", line)
		}
		q := bpQuery{typ: typ, first: first}

		if bpQueryTypeHasSecondArg(typ) {
			if len(fields) < 3 {
				return nil, errors.Errorf("bp input: query %q missing second argument", line)
			}
			second, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "bp input: malformed second argument in %q", line)
			}
			q.second = second
		}
		if bpQueryTypeHasThirdArg(typ) {
			if len(fields) < 4 {
				return nil, errors.Errorf("bp input: query %q missing third argument", line)
			}
			third, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrapf(err, "bp input: malformed third argument in %q", line)
			}
			q.third = third
		}
		queries = append(queries, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading bp input")
	}
	return queries, nil
}
