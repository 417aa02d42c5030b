/*
Package config loads the run settings for enumfix.

	+-------------+
	|   Config    |
	|  (target)   |
	+------+------+
	       |
	+------+------+------+
	|      |      |      |
	YAML  HCL   JSON  defaults

🎯 Purpose:
- Picks the file to rewrite
- Toggles debug logging

The replacement rules are fixed in package rule and are not configurable.

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, afero.NewOsFs(), ".enumfix.yaml")
*/
package config
