// Package fileutil reads and rewrites whole UTF-8 text files.
package fileutil
