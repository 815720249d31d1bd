package shell

import (
	"strings"

	"github.com/reiver/go-oi"
	"github.com/reiver/go-telnet"
)

// ConnectionHandler is a TELNET handler which executes commands against a
// Store.
type ConnectionHandler struct {
	Store *Store
}

// ServeTELNET implements telnet.Handler for ConnectionHandler.
func (h *ConnectionHandler) ServeTELNET(ctx telnet.Context, w telnet.Writer, r telnet.Reader) {
	var buffer [1]byte
	p := buffer[:]
	var command strings.Builder
	for {
		n, err := r.Read(p)
		if n > 0 {
			switch c := p[0]; c {
			case ';':
				if _, werr := oi.LongWriteString(w, h.reply(command.String())+"\n"); werr != nil {
					tracer().Debugf("shell: cannot reply: %v", werr)
					return
				}
				command.Reset()
			case '\n', '\r':
				command.WriteByte(' ')
			default:
				command.WriteByte(c)
			}
		}
		if err != nil {
			tracer().Debugf("shell: connection closed: %v", err)
			return
		}
	}
}

func (h *ConnectionHandler) reply(command string) string {
	out, err := h.Store.Execute(command)
	if err != nil {
		tracer().Infof("shell: %q: %v", command, err)
		return "error: " + err.Error()
	}
	return out
}
