/*
Package config loads the settings of a conneg application.

Values come, in increasing precedence, from defaults, an optional config file, and environment variables
prefixed with CONNEG_, e.g., CONNEG_TCN_ENABLED=false.
The config file is the one CONNEG_CONFIG points to or, failing that,
the first of ./configs/conneg.{yaml,toml,json} to exist.

The priority-override table may be set in the file:

	override_priority:
	  html: 1
	  json: 2

or in the environment as CONNEG_OVERRIDE_PRIORITY=html=1,json=2.
*/
package config
