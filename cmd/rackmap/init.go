package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rackmap/rackmap/pkg/storage"
	"github.com/rackmap/rackmap/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter dataset",
	Long: `Create an empty dataset at the given path.

Refuses to overwrite an existing dataset. Items are provisioned out-of-band
by editing the dataset document; racks are placed through the admin API or
'rackmap rack set'.

Examples:
  rackmap init --company "Acme Parts" --warehouse "WH-1"
  rackmap init --backend bolt --data /var/lib/rackmap/rackmap.db`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("data", "data/dataset.json", "Dataset path")
	initCmd.Flags().String("backend", "file", "Storage backend: file or bolt")
	initCmd.Flags().String("company", "", "Facility owner name")
	initCmd.Flags().String("warehouse", "", "Facility identifier")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("data")
	backend, _ := cmd.Flags().GetString("backend")
	company, _ := cmd.Flags().GetString("company")
	warehouse, _ := cmd.Flags().GetString("warehouse")

	store, err := storage.Open(backend, path)
	if err != nil {
		return err
	}
	defer store.Close()

	// A readable dataset means there is something to protect.
	if _, err := store.Load(); err == nil {
		return fmt.Errorf("dataset already exists at %s", path)
	} else if !errors.Is(err, storage.ErrUnreadable) {
		return err
	}

	dataset := &types.Dataset{
		Company:   company,
		Warehouse: warehouse,
		Items:     []*types.Item{},
		Racks:     []*types.Rack{},
	}
	if err := store.Save(dataset); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	fmt.Printf("✓ Dataset created at %s\n", path)
	return nil
}
