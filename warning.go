package streambuf

import (
	"io"
	"os"
)

// Warnings is where warnings are sent to.
// The core never logs, but some uses are almost certainly mistakes; binding a
// channel to storage too small to hold any content, for instance. I don't want
// to silently put up with things that seem worrying.
var Warnings io.Writer = os.Stderr

func warnInert(name string, storage []byte) {
	if len(storage) == 1 {
		io.WriteString(Warnings, "streambuf: "+name+" channel bound to 1 byte of storage; the terminator reservation leaves it unable to hold content\n")
	}
}
