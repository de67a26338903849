// Package model provides the data structures shared between the pipeline
// package and its options. It defines the task descriptors and the hook
// interface pipeline options implement.
package model
