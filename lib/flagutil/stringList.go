package flagutil

import (
	"strings"
)

func (sl *StringList) string() string {
	return `"` + strings.Join(*sl, ",") + `"`
}

func (sl *StringList) set(value string) error {
	if value == "" {
		*sl = nil
		return nil
	}
	newList := make(StringList, 0, strings.Count(value, ",")+1)
	for _, str := range strings.Split(value, ",") {
		if str = strings.TrimSpace(str); str != "" {
			newList = append(newList, str)
		}
	}
	*sl = newList
	return nil
}
