package logging

import (
	"strconv"
)

// ShortCallerFormatter trims the caller path down to the file name
func ShortCallerFormatter(file string, line int) string {
	short := file
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			short = file[i+1:]
			break
		}
	}
	file = short
	return file + ":" + strconv.Itoa(line)
}
