// Package jcdist converts a p-distance to a Jukes-Cantor distance. It is
// a standalone utility, not wired into any clustering driver.
package jcdist
