package core

import (
	"math"
	"strconv"
)

var suffixes = [5]string{"B", "KB", "MB", "GB", "TB"}

func round(val float64, roundOn float64, places int) (newVal float64) {
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

func humanFileSize(size float64) string {
	if size < 1 {
		return "0 B"
	}
	base := math.Log(size) / math.Log(1024)
	getSize := round(math.Pow(1024, base-math.Floor(base)), .5, 2)
	getSuffix := suffixes[int(math.Floor(base))]
	return strconv.FormatFloat(getSize, 'f', -1, 64) + " " + getSuffix
}

// byteCounter tallies what passes through an archive writer.
type byteCounter struct {
	written int64
}

func (this *byteCounter) Write(p []byte) (n int, err error) {
	n = len(p)
	this.written += int64(n)
	return n, nil
}

func (this *byteCounter) String() string {
	return humanFileSize(float64(this.written))
}
