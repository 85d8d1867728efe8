package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/succinctds/bpforest/dynbitvector"
	"github.com/succinctds/bpforest/leafstore"
)

// runBV executes spec §6.2's bv workload and returns the final RESULT
// summary line. Per §6, construction time for the initial bitvector is
// excluded from the reported elapsed time; only query processing is
// timed.
func runBV(inputFile, outputFile string) (string, error) {
	initial, queries, err := parseBVInput(inputFile)
	if err != nil {
		return "", err
	}

	bv, err := dynbitvector.New(leafstore.DefaultConfig())
	if err != nil {
		return "", errors.Wrap(err, "constructing bitvector")
	}
	for i, v := range initial {
		if err := bv.Insert(i, v); err != nil {
			return "", errors.Wrap(err, "loading initial bits")
		}
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return "", errors.Wrap(err, "creating bv output file")
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()

	start := time.Now()
	for _, q := range queries {
		if err := runBVQuery(bv, q, w); err != nil {
			return "", err
		}
	}
	elapsed := time.Since(start)

	if err := w.Flush(); err != nil {
		return "", errors.Wrap(err, "writing bv output")
	}

	return fmt.Sprintf("RESULT\talgo=bv\tname=dynamic_bitvector\ttime=%d\tspace=%d",
		elapsed.Milliseconds(), bv.SpaceUsedBits()), nil
}

func runBVQuery(bv *dynbitvector.DynamicBitVector, q bvQuery, w *bufio.Writer) error {
	switch q.typ {
	case bvInsert:
		return bv.Insert(q.first, q.second != 0)
	case bvDelete:
		return bv.Delete(q.first)
	case bvFlip:
		return bv.Flip(q.first)
	case bvRank:
		var rank int
		var err error
		if q.first != 0 {
			rank, err = bv.Rank1(q.second)
		} else {
			rank, err = bv.Rank0(q.second)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, rank)
		return err
	case bvSelect:
		var pos int
		var err error
		if q.first != 0 {
			pos, err = bv.Select1(q.second)
		} else {
			pos, err = bv.Select0(q.second)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, pos)
		return err
	default:
		return errors.Errorf("unhandled bv query type %d", q.typ)
	}
}
