// Package fontscale maps word counts to bounded font levels for tag cloud
// rendering. Levels are linearly interpolated between the minimum and
// maximum counts in a selection using truncating integer division, so a
// given selection always produces the same levels.
package fontscale
