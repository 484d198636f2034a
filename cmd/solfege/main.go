// Command solfege prints spelled scales, their key signatures and degrees.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/solfege/scale"
)

// Circle-of-fifths print order for the key chart.
var (
	majorKeys = []string{"C", "G", "D", "A", "E", "B", "F#", "C#", "F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb"}
	minorKeys = []string{"A", "E", "B", "F#", "C#", "G#", "D#", "A#", "D", "G", "C", "F", "Bb", "Eb", "Ab"}
)

var (
	rootCmd = &cobra.Command{
		Use:           "solfege",
		Short:         "Spelled scales, key signatures and degrees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	scaleCmd = &cobra.Command{
		Use:   `scale "<TONIC> <QUALITY>"`,
		Short: "Print a scale's notes, key signature and degrees",
		Long: `Print the ascending notes, key signature and named degrees of a scale.

The argument is a tonic (A-G with an optional # or b) followed by a quality:
MAJOR, NATURAL MINOR, HARMONIC MINOR or MELODIC MINOR. Example:

  solfege scale "F# HARMONIC MINOR"`,
		Args: cobra.ExactArgs(1),
		RunE: runScale,
	}

	keysCmd = &cobra.Command{
		Use:   "keys",
		Short: "Print the key-signature chart for all 30 legal keys",
		RunE:  runKeys,
	}
)

func runScale(cmd *cobra.Command, args []string) error {
	s, err := scale.New(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", s)
	fmt.Printf("  notes:         %s\n", strings.Join(s.Ascend(), " "))
	fmt.Printf("  key signature: %s\n", formatSignature(s.KeySignature()))
	for d := scale.Tonic; d <= scale.LeadingTone; d++ {
		n, err := s.Degree(d)
		if err != nil {
			return err
		}
		fmt.Printf("  %-12s %s\n", strings.ToLower(d.String()), n.Name())
	}

	return nil
}

func runKeys(cmd *cobra.Command, args []string) error {
	fmt.Println("MAJOR KEYS")
	if err := printChart(majorKeys, " MAJOR"); err != nil {
		return err
	}
	fmt.Println("\nMINOR KEYS")

	return printChart(minorKeys, " NATURAL MINOR")
}

// printChart builds every scale of one mode class and prints its signature.
func printChart(tonics []string, quality string) error {
	for _, tonic := range tonics {
		s, err := scale.New(tonic + quality)
		if err != nil {
			return err
		}
		fmt.Printf("  %-3s %s\n", tonic, formatSignature(s.KeySignature()))
	}

	return nil
}

// formatSignature renders an altered-note list, with a stand-in for the
// empty (all-natural) signature.
func formatSignature(signature []string) string {
	if len(signature) == 0 {
		return "(none)"
	}

	return strings.Join(signature, " ")
}

func main() {
	rootCmd.AddCommand(scaleCmd, keysCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "solfege:", err)
		os.Exit(1)
	}
}
