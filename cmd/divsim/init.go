package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/divsim/dividend-simulator/internal/config"
)

var initOutputPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example configuration file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", "divsim.yaml", "where to write the example configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(initOutputPath); err == nil {
		return fmt.Errorf("%s already exists; refusing to overwrite", initOutputPath)
	}

	example := config.NewInputParser().CreateExampleConfiguration()
	data, err := yaml.Marshal(example)
	if err != nil {
		return err
	}
	if err := os.WriteFile(initOutputPath, data, 0644); err != nil {
		return err
	}
	fmt.Printf("wrote example configuration to %s\n", initOutputPath)
	return nil
}
