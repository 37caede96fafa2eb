package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/spf13/cobra"
)

// NewNodeCommand creates the node command group.
func NewNodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "node",
		Aliases: []string{"nodes"},
		Short:   "Manage folder-tree nodes",
		Long:    "Inspect nodes and list their children",
	}

	cmd.AddCommand(newNodeGetCommand())
	cmd.AddCommand(newNodeChildrenCommand())

	return cmd
}

func newNodeGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NODE_ID",
		Short: "Get node details",
		Long:  "Display detailed information about a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			node, err := client.Nodes().Get(context.Background(), nodeID)
			if err != nil {
				return fmt.Errorf("failed to get node '%s': %w", nodeID, err)
			}

			structured, err := renderStructured(node)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", node.NodeID())
			_ = table.Append("Name", orNotAvailable(node.Name))
			_ = table.Append("Type", string(node.Type))
			_ = table.Append("Privacy", string(node.Privacy))
			_ = table.Append("Has Children", strconv.FormatBool(node.HasChildren))

			if node.DateModified != nil {
				_ = table.Append("Modified", node.DateModified.Format(timeFormat))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

// NodeChildrenOptions holds the options for listing child nodes.
type NodeChildrenOptions struct {
	Count    int
	Type     string
	MaxNodes int
}

func newNodeChildrenCommand() *cobra.Command {
	var opts NodeChildrenOptions

	cmd := &cobra.Command{
		Use:   "children NODE_ID",
		Short: "List child nodes",
		Long:  "List the children of a node, following pagination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNodeChildrenCommand(args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", smugmug.DefaultPageSize, "page size")
	cmd.Flags().StringVar(&opts.Type, "type", "", "node type filter (Album, Folder, Page)")
	cmd.Flags().IntVar(&opts.MaxNodes, "max", 0, "stop after this many nodes (0 for all)")

	return cmd
}

func runNodeChildrenCommand(nodeID string, opts NodeChildrenOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	node, err := client.Nodes().Get(ctx, nodeID)
	if err != nil {
		return fmt.Errorf("failed to get node '%s': %w", nodeID, err)
	}

	params := smugmug.NewChildrenParams().WithCount(opts.Count)
	if opts.Type != "" {
		params = params.WithType(smugmug.NodeTypeFilter(opts.Type))
	}

	iter, err := client.Nodes().Children(ctx, node, params)
	if err != nil {
		return fmt.Errorf("failed to list children of '%s': %w", nodeID, err)
	}

	children, err := collectNodes(iter, opts.MaxNodes)
	if err != nil {
		return fmt.Errorf("failed to list children of '%s': %w", nodeID, err)
	}

	return outputNodes(children)
}

// collectNodes drains the iterator, stopping early once max nodes have
// been pulled.
func collectNodes(iter *smugmug.Iterator[smugmug.Node], max int) ([]smugmug.Node, error) {
	if max <= 0 {
		return iter.All()
	}

	nodes := make([]smugmug.Node, 0, max)

	for iter.HasNext() && len(nodes) < max {
		node, err := iter.Next()
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

func outputNodes(nodes []smugmug.Node) error {
	structured, err := renderStructured(nodes)
	if structured || err != nil {
		return err
	}

	if len(nodes) == 0 {
		_, _ = os.Stdout.WriteString("No child nodes found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Privacy")

	for _, node := range nodes {
		_ = table.Append(node.NodeID(), node.Name, string(node.Type), string(node.Privacy))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
