/*
Package client provides a typed Go client for the Rackmap HTTP API.

The CLI subcommands (rackmap search, rackmap rack set) use this client; it is
also usable as a library from other Go programs. All methods take a context
and return the API's response structs; a failed request surfaces the server's
{ok:false, message} envelope as an error.

# Usage

	c := client.New("localhost:8080")

	res, err := c.Search(ctx, "bolt m6")
	if err != nil {
		return err
	}
	for _, r := range res.Results {
		fmt.Printf("%s  %s  rack %s\n", r.Code, r.Name, r.RackCode)
	}

	rack, msg, err := c.UpsertRack(ctx, "A01", 120, 80)

# See Also

  - pkg/api for endpoint semantics and status mapping
*/
package client
