package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/boxgen/internal/box"
	"github.com/philipparndt/boxgen/internal/generate"
	"github.com/philipparndt/boxgen/internal/logging"
	"github.com/philipparndt/boxgen/version"
)

var (
	length    float64
	width     float64
	height    float64
	thickness float64
	overlap   float64
	lidHeight float64
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "boxgen",
	Short: "Parametric box and lid STL generator",
	Long: `boxgen generates a 3D-printable storage box base and a matching lid from
interior dimensions. Both solids are exported as binary STL meshes and
bundled, together with a parameter manifest, into a compressed tar archive.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.Flags().Float64VarP(&length, "length", "l", 0, "Internal length of the box")
	rootCmd.Flags().Float64VarP(&width, "width", "w", 0, "Internal width of the box")
	rootCmd.Flags().Float64VarP(&height, "height", "H", 0, "Internal height of the box")
	rootCmd.Flags().Float64VarP(&thickness, "thickness", "t", box.DefaultThickness, "Wall thickness")
	rootCmd.Flags().Float64VarP(&overlap, "overlap", "o", box.DefaultOverlap, "Lid overlap")
	rootCmd.Flags().Float64Var(&lidHeight, "lid_height", box.DefaultLidHeight, "Lid height")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", generate.DefaultOutputDir, "Directory for the generated archive")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if !flags.Changed("length") || !flags.Changed("width") || !flags.Changed("height") {
		fmt.Println("Please provide the internal length, width, and height of the box.")
		return nil
	}

	gen := generate.New(logging.NewLogger(os.Stderr))
	gen.OutputDir = outputDir

	return gen.Run(box.Params{
		Length:    length,
		Width:     width,
		Height:    height,
		Thickness: thickness,
		Overlap:   overlap,
		LidHeight: lidHeight,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
