package main

import (
	"fmt"

	"github.com/g-m-twostay/go-threadedtree/Trees"
	"github.com/urfave/cli"
)

func runDemo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	t := Trees.From([]int{1, 2, 3})
	s := Trees.From([]int{4, 5, 6})
	p := Trees.From([]int{6, 1})
	x, err := t.Union(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.w, x)
	if x, err = x.Difference(p); err != nil {
		return err
	}
	fmt.Fprintln(m.w, x)
	fmt.Fprintln(m.w, Trees.From([]string{"abc", "def", "cat", "dog"}))
	m.log.WithField("hash", x.Hash()).Debug("difference")
	return nil
}
