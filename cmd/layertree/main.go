// Command layertree inspects the layer metadata derived from a procedural
// graph snapshot stored as JSON. It rebuilds the layer tree and prints its
// structure, tags and bounds.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vecdoc/docmeta"
)

var (
	flagReverse bool
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "layertree",
	Short:         "Inspect the layer tree derived from a procedural graph snapshot",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			docmeta.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging to stderr")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(boundsCmd)
}

var printCmd = &cobra.Command{
	Use:   "print <graph.json>",
	Short: "Print the rebuilt layer tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func init() {
	printCmd.Flags().BoolVar(&flagReverse, "reverse", false, "print the descendants in reverse pre-order")
}

func runPrint(cmd *cobra.Command, args []string) error {
	m, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	if flagReverse {
		for layer := range m.AllLayers().Backward() {
			fmt.Fprintln(cmd.OutOrStdout(), describeLayer(m, layer))
		}
		return nil
	}

	printSubtree(cmd, m, m.Root(), 0)
	return nil
}

// printSubtree prints the children of layer, indented by depth.
func printSubtree(cmd *cobra.Command, m *docmeta.DocumentMetadata, layer docmeta.LayerID, depth int) {
	for child := range m.Children(layer) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", strings.Repeat("  ", depth), describeLayer(m, child))
		printSubtree(cmd, m, child, depth+1)
	}
}

// describeLayer formats one layer with its tags and viewport bounds.
func describeLayer(m *docmeta.DocumentMetadata, layer docmeta.LayerID) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "node %d", layer.Node())
	if m.IsArtboard(layer) {
		sb.WriteString(" [artboard]")
	}
	if m.IsFolder(layer) {
		sb.WriteString(" [folder]")
	}
	if bounds, ok := m.BoundingBoxViewport(layer); ok {
		fmt.Fprintf(&sb, " bounds (%g,%g)-(%g,%g)",
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return sb.String()
}

var boundsCmd = &cobra.Command{
	Use:   "bounds <graph.json>",
	Short: "Print the document bounds in document space",
	Args:  cobra.ExactArgs(1),
	RunE:  runBounds,
}

var flagArtboards bool

func init() {
	boundsCmd.Flags().BoolVar(&flagArtboards, "artboards", false, "include artboards in the bounds")
}

func runBounds(cmd *cobra.Command, args []string) error {
	m, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	bounds, ok := m.DocumentBoundsDocumentSpace(flagArtboards)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "empty document")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "(%g,%g)-(%g,%g)\n",
		bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	return nil
}
