package logger

import (
	"fmt"
	"log"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   int
	limiter int
	filter  *regexp.Regexp
	counter *hashmap.HashMap
)

func init() {
	counter = &hashmap.HashMap{}
}

// Configure applies the [log] section of the config file. The filter and
// limiter only gate VERBOSE and DEBUG lines, errors and INFO always pass.
func Configure(l int, pattern string, limit int) error {
	SetLevel(l)
	SetLimiter(limit)
	return SetFilter(pattern)
}

func SetLevel(l int) {
	level = l
}

// SetLimiter caps how many times one identical line is printed, 0 disables it.
func SetLimiter(l int) {
	limiter = l
	counter = &hashmap.HashMap{}
}

func SetFilter(pattern string) error {
	if pattern == "" {
		filter = nil
		return nil
	}
	// https://github.com/google/re2/wiki/Syntax
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

func Errorf(format string, v ...interface{}) {
	emit(ERROR, false, "ERROR "+format, v...)
}

func Printf(format string, v ...interface{}) {
	emit(INFO, false, format, v...)
}

func Verbosef(format string, v ...interface{}) {
	emit(VERBOSE, true, format, v...)
}

func Debugf(format string, v ...interface{}) {
	emit(DEBUG, true, format, v...)
}

func emit(l int, gated bool, format string, v ...interface{}) {
	if level < l {
		return
	}
	out := fmt.Sprintf(format, v...)
	if gated && (!matches(out) || !limiterAvailable(out)) {
		return
	}
	log.Print(out)
}

func matches(out string) bool {
	return filter == nil || filter.MatchString(out)
}

func limiterAvailable(out string) bool {
	if limiter == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	return atomic.AddInt64(val.(*int64), 1) <= int64(limiter)
}
