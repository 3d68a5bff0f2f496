package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rackmap/rackmap/pkg/client"
)

var rackCmd = &cobra.Command{
	Use:   "rack",
	Short: "Manage rack markers",
}

var rackSetCmd = &cobra.Command{
	Use:   "set CODE X Y",
	Short: "Place or move a rack marker on the facility map",
	Long: `Place a new rack marker or move an existing one.

The rack code is the natural key: an unknown code creates a marker, a known
code (matched case-insensitively) moves it. Coordinates are in the map
asset's own coordinate space.

Examples:
  rackmap rack set A01 120 80
  rackmap rack set b12 40.5 220 --server warehouse-host:8080`,
	Args: cobra.ExactArgs(3),
	RunE: runRackSet,
}

func init() {
	rackSetCmd.Flags().String("server", "localhost:8080", "Rackmap server address")
	rackCmd.AddCommand(rackSetCmd)
}

func runRackSet(cmd *cobra.Command, args []string) error {
	server, _ := cmd.Flags().GetString("server")
	code := args[0]

	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid x coordinate: %s", args[1])
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid y coordinate: %s", args[2])
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rack, msg, err := client.New(server).UpsertRack(ctx, code, x, y)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", msg)
	fmt.Printf("  ID: %s  Code: %s  Position: (%g, %g)\n", rack.ID, rack.Code, rack.X, rack.Y)
	return nil
}
