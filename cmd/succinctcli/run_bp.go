package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/succinctds/bpforest/bptree"
)

// runBP executes spec §6.3's bp workload: every tree starts as a bare
// root, queries mutate and navigate it, and the final output is every
// child/subtree_size/parent query's answer followed by a DFS preorder
// dump of child counts (root first).
func runBP(inputFile, outputFile string) (string, error) {
	queries, err := parseBPInput(inputFile)
	if err != nil {
		return "", err
	}

	tree, err := bptree.New()
	if err != nil {
		return "", errors.Wrap(err, "constructing bp tree")
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return "", errors.Wrap(err, "creating bp output file")
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()

	start := time.Now()
	for _, q := range queries {
		if err := runBPQuery(tree, q, w); err != nil {
			return "", err
		}
	}
	if err := dumpTreeShape(tree, w); err != nil {
		return "", errors.Wrap(err, "writing bp final tree dump")
	}
	elapsed := time.Since(start)

	if err := w.Flush(); err != nil {
		return "", errors.Wrap(err, "writing bp output")
	}

	return fmt.Sprintf("RESULT\talgo=bp\tname=dynamic_bp_tree\ttime=%d\tspace=%d",
		elapsed.Milliseconds(), tree.SpaceUsedBits()), nil
}

func runBPQuery(tree *bptree.DynamicBPTree, q bpQuery, w *bufio.Writer) error {
	switch q.typ {
	case bpDeleteNode:
		return tree.DeleteNode(q.first)
	case bpInsertChild:
		return tree.InsertNode(q.first, q.second, q.third)
	case bpChild:
		c, err := tree.IthChild(q.first, q.second)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, c)
		return err
	case bpSubtreeSize:
		size, err := tree.SubtreeSize(q.first)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, size)
		return err
	case bpParent:
		p, err := tree.Parent(q.first)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, p)
		return err
	default:
		return errors.Errorf("unhandled bp query type %d", q.typ)
	}
}

// dumpTreeShape writes one line per node, in DFS preorder starting at
// the root, giving that node's direct child count.
func dumpTreeShape(tree *bptree.DynamicBPTree, w *bufio.Writer) error {
	var walk func(v int) error
	walk = func(v int) error {
		count, err := tree.ChildCount(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, count); err != nil {
			return err
		}
		for i := 1; i <= count; i++ {
			c, err := tree.IthChild(v, i)
			if err != nil {
				return err
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(tree.Root())
}
