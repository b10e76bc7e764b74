// Package models defines the persisted types for the notes resource.
package models
