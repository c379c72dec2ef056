/*
Package verstr compares strings containing version numbers, treating runs of
digits as numbers, so that "file.9" sorts before "file.10".
*/
package verstr

// Compare returns -1 if left sorts before right, 1 if it sorts after and 0 if
// they are equal.
func Compare(left, right string) int {
	return compare(left, right)
}

// Less returns true if left sorts before right.
func Less(left, right string) bool {
	return compare(left, right) < 0
}
