// Package utils provides loose value conversion for query flags and parsed numbers.
package utils
