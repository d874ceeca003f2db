// Package utils provides small path and file helpers shared by storefront-admin.
//
// Path resolution:
//
//	absPath := utils.GetAbsolutePath("data", "/etc/storefront-admin")
//	// Returns: /etc/storefront-admin/data
package utils
