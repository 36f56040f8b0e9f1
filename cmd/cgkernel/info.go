package main

import (
	"fmt"
	"strings"

	"github.com/notargets/CGKernel/element"
	"github.com/spf13/cobra"
)

var infoDegree int

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print reference element summaries",
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().IntVar(&infoDegree, "degree", 1, "polynomial degree of the element")
}

func runInfo(cmd *cobra.Command, args []string) error {
	for _, cell := range []*element.ReferenceCell{element.ReferenceInterval, element.ReferenceTriangle} {
		el, err := element.NewLagrangeElement(cell, infoDegree)
		if err != nil {
			return err
		}
		fmt.Print(elementSummary(el))
		if cell.Dim == 2 {
			vec := element.NewVectorElement(el)
			fmt.Printf("  Vector variant: %s with %d dofs\n", vec, vec.Np())
		}
		fmt.Println()
	}
	return nil
}

// elementSummary reports the element's entity layout.
func elementSummary(el *element.FiniteElement) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== %s ===\n", el))
	sb.WriteString(fmt.Sprintf("  Cell: %s\n", el.Cell))
	sb.WriteString(fmt.Sprintf("  Degree: %d\n", el.Degree))
	sb.WriteString(fmt.Sprintf("  Nodes: %d\n", el.NodeCount))
	for d, npe := range el.NodesPerEntity {
		sb.WriteString(fmt.Sprintf("  Nodes per dim-%d entity: %d\n", d, npe))
	}
	return sb.String()
}
