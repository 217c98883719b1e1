// Package versioncheck scans the dependency declarations of every project
// in a workspace and reports dependencies requested at more than one
// version. It is a read-only analysis with no scheduling involvement.
package versioncheck
