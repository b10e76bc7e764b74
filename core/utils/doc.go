// Package utils provides common utility functions for Bulk Manager.
// It includes helper functions for loose-typed scalar conversion and other
// shared logic that doesn't fit into domain-specific packages.
package utils
