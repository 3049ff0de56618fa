package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var inputDir string
	var outputFile string

	rootCmd := &cobra.Command{
		Use:   "xray-labeler",
		Short: "Label regions in X-ray DICOM images",
		Long: "xray-labeler shows the images found under a directory one at a time,\n" +
			"lets you drag one bounding box per image, and saves all annotations\n" +
			"to a CSV file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewLabelerApp(inputDir, outputFile)
			if err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input directory containing DICOM files")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file for annotations")
	cobra.CheckErr(rootCmd.MarkFlagRequired("input"))
	cobra.CheckErr(rootCmd.MarkFlagRequired("output"))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
