// Package config provides configuration loading for the reconcile CLI.
//
// Configuration is read from reconcile.json in the project directory, then
// from a .env file next to it, then from RECONCILE_* environment variables.
// Later sources win. A missing reconcile.json is not an error.
//
// # Configuration File Structure
//
//	{
//	  "output": {
//	    "indent": "  ",
//	    "compact": false
//	  },
//	  "debug": {
//	    "hookOrder": false,
//	    "logRecompute": false
//	  },
//	  "metrics": {
//	    "enabled": false,
//	    "namespace": "vango",
//	    "subsystem": "reconcile"
//	  }
//	}
//
// Environment variables map nested keys with underscores, e.g.
// RECONCILE_METRICS_ENABLED=true or RECONCILE_OUTPUT_COMPACT=1.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Indent:", cfg.Output.Indent)
package config
