package main

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/g-m-twostay/go-threadedtree/Metrics"
	"github.com/g-m-twostay/go-threadedtree/Trees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func runStress(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	trials, samples, bound := c.Int("trials"), c.Int("samples"), c.Int("bound")
	policy := Trees.Aggregate
	if c.Bool("duplicates") {
		policy = Trees.AllowDuplicates
	}
	if samples > bound || samples < 0 {
		return fmt.Errorf("samples: %d must be within [0, bound=%d]", samples, bound)
	}
	rg := rand.New(rand.NewSource(c.Int64("seed")))

	reg := prometheus.NewRegistry()
	counter, err := Metrics.NewRemoveCounter("ttbench", reg)
	if err != nil {
		return err
	}

	for i := range trials {
		t := Trees.New[int](Trees.WithPolicy(policy), Trees.WithObserver(counter.Observe))
		suite := rg.Perm(bound)[:samples]
		for _, v := range suite {
			if err := t.Insert(v); err != nil {
				return err
			}
		}
		want := slices.Clone(suite)
		slices.Sort(want)
		if !slices.Equal(t.Slice(), want) {
			return fmt.Errorf("trial %d: in-order differs after inserting", i)
		}
		rg.Shuffle(len(suite), func(a, b int) { suite[a], suite[b] = suite[b], suite[a] })
		for _, v := range suite {
			if ok, _ := t.Remove(v); !ok {
				return fmt.Errorf("trial %d: failed to remove %d", i, v)
			}
			j, _ := slices.BinarySearch(want, v)
			want = slices.Delete(want, j, j+1)
			if !slices.Equal(t.Slice(), want) {
				return fmt.Errorf("trial %d: in-order differs after removing %d", i, v)
			}
			if err := t.Check(); err != nil {
				return fmt.Errorf("trial %d: after removing %d: %w", i, v, err)
			}
		}
		m.log.WithFields(logrus.Fields{"trial": i, "samples": samples}).Debug("trial done")
	}

	fields := logrus.Fields{"trials": trials}
	for _, rc := range Trees.RemoveCases() {
		n := counter.Value(rc)
		fields[rc.String()] = n
		fmt.Fprintf(m.w, "%-20s %d\n", rc.String()+":", n)
	}
	m.log.WithFields(fields).Info("stress")
	return nil
}
