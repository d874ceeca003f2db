// Package log provides simple leveled logging for storefront-admin.
//
// Messages are printed with a timestamp and a colored level tag: DEBUG, INFO,
// WARN and ERROR. Debug output is only shown in verbose mode. Errors go to
// stderr, everything else to stdout, unless SetOutput redirects both.
//
// # Example Usage
//
//	log.Infof("Listening on %s", addr)
//	log.Warnf("Access denied for %s", ip)
//	log.Errorf("Failed to save %s: %v", collection, err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Loaded %d products", n)
//
// All functions are safe for concurrent use.
package log
