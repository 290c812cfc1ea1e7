// Package testsupport provides fixtures and golden-file helpers shared by
// package tests. Golden files are rewritten when UPDATE_GOLDENS is set.
package testsupport
