/*
Package config loads Rackmap's YAML configuration.

Configuration is resolved in three layers: built-in defaults, an optional
YAML file, then command-line flags applied by cmd/rackmap. Absent file fields
keep their defaults, so a minimal config only states what differs.

# Example

	listen: ":8080"
	assets: "web"
	mapFile: "floorplan.png"
	storage:
	  backend: file
	  path: data/dataset.json
	log:
	  level: info
	  json: true
	admin:
	  rateLimit: 5
	  rateBurst: 10

# See Also

  - cmd/rackmap for flag overrides
*/
package config
