package main

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/g-m-twostay/go-threadedtree/Trees"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func runBuild(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	n := c.Int("count")
	if n <= 0 {
		return fmt.Errorf("count: %d must be positive", n)
	}
	arr := rand.New(rand.NewSource(c.Int64("seed"))).Perm(n)

	start := time.Now()
	t := Trees.From(arr)
	treeTook := time.Since(start)

	sorted := slices.Clone(arr)
	start = time.Now()
	slices.Sort(sorted)
	sortTook := time.Since(start)

	if !slices.Equal(t.Slice(), sorted) {
		return fmt.Errorf("tree order differs from sorted order")
	}
	m.log.WithFields(logrus.Fields{
		"count": n,
		"tree":  treeTook,
		"sort":  sortTook,
	}).Info("build")
	fmt.Fprintf(m.w, "tree: %s\nsort: %s\n", treeTook, sortTook)
	return nil
}
