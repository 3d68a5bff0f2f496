package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rackmap/rackmap/pkg/client"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Find items and the racks holding them",
	Long: `Search the running server for items by name or code.

Examples:
  rackmap search "bolt m6"
  rackmap search BLT --server warehouse-host:8080`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("server", "localhost:8080", "Rackmap server address")
}

func runSearch(cmd *cobra.Command, args []string) error {
	server, _ := cmd.Flags().GetString("server")
	query := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := client.New(server).Search(ctx, query)
	if err != nil {
		return err
	}

	if res.Message != "" {
		fmt.Println(res.Message)
		return nil
	}
	if res.Total == 0 {
		fmt.Printf("No items match %q\n", res.Query)
		return nil
	}

	fmt.Printf("%-8s %-30s %-8s %s\n", "CODE", "NAME", "RACK", "POSITION")
	for _, r := range res.Results {
		pos := "-"
		if r.RackX != nil && r.RackY != nil {
			pos = fmt.Sprintf("(%g, %g)", *r.RackX, *r.RackY)
		}
		fmt.Printf("%-8s %-30s %-8s %s\n", r.Code, r.Name, r.RackCode, pos)
	}
	fmt.Printf("\n%d item(s)\n", res.Total)
	return nil
}
