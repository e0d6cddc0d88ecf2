// Package game holds the entity state advanced by the frame loop: one player,
// one score record, and the frame counter they derive from.
package game
