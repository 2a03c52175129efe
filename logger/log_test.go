package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert := assert.New(t)
	defer SetFilter("")

	assert.True(matches("register x = 1/2"))

	err := SetFilter("register")
	assert.Nil(err)
	assert.False(matches("eval 1/2 3/4 +"))
	assert.False(matches("Register x"))
	assert.True(matches("register x"))

	err = SetFilter("(?i)register")
	assert.Nil(err)
	assert.True(matches("Register x"))
	assert.False(matches("eval 1/2 3/4 +"))

	err = SetFilter("(?i)register|eval")
	assert.Nil(err)
	assert.True(matches("eval 1/2 3/4 +"))

	err = SetFilter("(")
	assert.NotNil(err)
}

func TestLoggerLimiter(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	flags := log.Flags()
	log.SetFlags(0)
	defer log.SetFlags(flags)

	err := Configure(VERBOSE, "", 2)
	assert.Nil(err)
	defer Configure(0, "", 0)

	for i := 0; i < 5; i++ {
		Verbosef("gc %d", 1)
	}
	Verbosef("gc %d", 2)
	Debugf("hidden %d", 3)
	assert.Equal("gc 1\ngc 1\ngc 2\n", buf.String())

	buf.Reset()
	Errorf("store %s", "closed")
	Printf("listening on %d", 8239)
	assert.Equal("ERROR store closed\nlistening on 8239\n", buf.String())

	buf.Reset()
	err = Configure(DEBUG, "register", 1)
	assert.Nil(err)
	Debugf("calc %s", "+")
	Debugf("register %s", "x")
	Debugf("register %s", "x")
	Printf("listening on %d", 8239)
	Printf("listening on %d", 8239)
	Errorf("register %s", "failed")
	Errorf("register %s", "failed")
	assert.Equal("register x\nlistening on 8239\nlistening on 8239\nERROR register failed\nERROR register failed\n", buf.String())

	buf.Reset()
	SetLevel(ERROR)
	Printf("listening on %d", 8239)
	Verbosef("gc %d", 3)
	assert.Equal("", buf.String())
}
