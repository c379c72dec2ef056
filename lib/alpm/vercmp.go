package alpm

import (
	"strings"
)

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlnum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// splitVersion splits [epoch:]version[-release]. A missing epoch is "0".
func splitVersion(evr string) (string, string, string, bool) {
	index := 0
	for index < len(evr) && isDigit(evr[index]) {
		index++
	}
	epoch, version := "0", evr
	if index < len(evr) && evr[index] == ':' {
		if index > 0 {
			epoch = evr[:index]
		}
		version = evr[index+1:]
	}
	if index := strings.LastIndexByte(version, '-'); index >= 0 {
		return epoch, version[:index], version[index+1:], true
	}
	return epoch, version, "", false
}

// compareSegments compares alternating runs of digits and letters, skipping
// the separators between them.
func compareSegments(left, right string) int {
	if left == right {
		return 0
	}
	leftIndex, rightIndex := 0, 0
	for leftIndex < len(left) && rightIndex < len(right) {
		leftStart, rightStart := leftIndex, rightIndex
		for leftIndex < len(left) && !isAlnum(left[leftIndex]) {
			leftIndex++
		}
		for rightIndex < len(right) && !isAlnum(right[rightIndex]) {
			rightIndex++
		}
		if leftIndex >= len(left) || rightIndex >= len(right) {
			break
		}
		// More separators means a newer version.
		if leftIndex-leftStart != rightIndex-rightStart {
			if leftIndex-leftStart < rightIndex-rightStart {
				return -1
			}
			return 1
		}
		leftStart, rightStart = leftIndex, rightIndex
		isNumber := isDigit(left[leftIndex])
		matches := isAlpha
		if isNumber {
			matches = isDigit
		}
		for leftIndex < len(left) && matches(left[leftIndex]) {
			leftIndex++
		}
		for rightIndex < len(right) && matches(right[rightIndex]) {
			rightIndex++
		}
		leftSegment := left[leftStart:leftIndex]
		rightSegment := right[rightStart:rightIndex]
		if rightSegment == "" {
			// Segments of different types: numbers are newer.
			if isNumber {
				return 1
			}
			return -1
		}
		if isNumber {
			leftSegment = strings.TrimLeft(leftSegment, "0")
			rightSegment = strings.TrimLeft(rightSegment, "0")
			if len(leftSegment) != len(rightSegment) {
				if len(leftSegment) < len(rightSegment) {
					return -1
				}
				return 1
			}
		}
		if leftSegment != rightSegment {
			if leftSegment < rightSegment {
				return -1
			}
			return 1
		}
	}
	if leftIndex >= len(left) && rightIndex >= len(right) {
		return 0
	}
	// A remaining letter segment never beats the end of the other version.
	if (leftIndex >= len(left) && !isAlpha(right[rightIndex])) ||
		(leftIndex < len(left) && isAlpha(left[leftIndex])) {
		return -1
	}
	return 1
}

func verCmp(left, right string) int {
	if left == right {
		return 0
	}
	leftEpoch, leftVersion, leftRelease, leftHasRelease := splitVersion(left)
	rightEpoch, rightVersion, rightRelease, rightHasRelease :=
		splitVersion(right)
	if result := compareSegments(leftEpoch, rightEpoch); result != 0 {
		return result
	}
	if result := compareSegments(leftVersion, rightVersion); result != 0 {
		return result
	}
	if leftHasRelease && rightHasRelease {
		return compareSegments(leftRelease, rightRelease)
	}
	return 0
}
