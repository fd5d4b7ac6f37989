package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/npillmayer/domscope/snapshot"
	"github.com/npillmayer/domscope/tree"
)

// infoWidth is the nominal interval partitioned for non-interactive
// commands; only relative proportions matter there.
const infoWidth = 1000

func runTree(cmd *cobra.Command, location, selector string) error {
	root, err := loadDocument(context.Background(), location, selector)
	if err != nil {
		return err
	}
	snap, _ := snapshot.Build(root, 0, infoWidth)
	fmt.Fprint(cmd.OutOrStdout(), snapshot.Sprint(snap))
	return nil
}

func runInfo(cmd *cobra.Command, location string) error {
	root, err := loadDocument(context.Background(), location, "")
	if err != nil {
		return err
	}
	snap, idx := snapshot.Build(root, 0, infoWidth)
	nodes := tree.FindAll(&snap.Node, tree.Whatever[*snapshot.Node]())
	leafs := tree.FindAll(&snap.Node, tree.NodeIsLeaf[*snapshot.Node]())

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Location", location})
	table.Append([]string{"Nodes", strconv.Itoa(len(nodes))})
	table.Append([]string{"Leaf nodes", strconv.Itoa(len(leafs))})
	table.Append([]string{"Max depth", strconv.Itoa(idx.MaxDepth)})
	table.Append([]string{"Identifiers", strconv.Itoa(len(idx.IDs))})
	table.Append([]string{"Links (with target)", strconv.Itoa(len(idx.Links))})
	table.Append([]string{"Images", strconv.Itoa(len(idx.Images))})
	table.Append([]string{"Scripts", strconv.Itoa(len(idx.Scripts))})
	table.Append([]string{"Forms", strconv.Itoa(len(idx.Forms))})
	table.Append([]string{"Head present", yesno(idx.Head != nil)})
	table.Append([]string{"Body present", yesno(idx.Body != nil)})
	table.Render()
	return nil
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
