package verstr

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// digitRun returns the end of the run of digits starting at start and the
// start of the significant (non-zero-padded) part of the run.
func digitRun(s string, start int) (int, int) {
	significant := start
	for significant < len(s)-1 && s[significant] == '0' &&
		isDigit(s[significant+1]) {
		significant++
	}
	end := significant
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return end, significant
}

func compare(left, right string) int {
	leftIndex, rightIndex := 0, 0
	for leftIndex < len(left) && rightIndex < len(right) {
		if isDigit(left[leftIndex]) && isDigit(right[rightIndex]) {
			leftEnd, leftStart := digitRun(left, leftIndex)
			rightEnd, rightStart := digitRun(right, rightIndex)
			leftNumber := left[leftStart:leftEnd]
			rightNumber := right[rightStart:rightEnd]
			if len(leftNumber) != len(rightNumber) {
				if len(leftNumber) < len(rightNumber) {
					return -1
				}
				return 1
			}
			if leftNumber != rightNumber {
				if leftNumber < rightNumber {
					return -1
				}
				return 1
			}
			leftIndex, rightIndex = leftEnd, rightEnd
			continue
		}
		if left[leftIndex] != right[rightIndex] {
			if left[leftIndex] < right[rightIndex] {
				return -1
			}
			return 1
		}
		leftIndex++
		rightIndex++
	}
	switch {
	case len(left)-leftIndex < len(right)-rightIndex:
		return -1
	case len(left)-leftIndex > len(right)-rightIndex:
		return 1
	}
	return 0
}
