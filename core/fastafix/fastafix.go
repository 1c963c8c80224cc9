// core/fastafix/fastafix.go
package fastafix

import (
	"bufio"
	"io"
	"strings"
)

// DefaultToken is the generic placeholder that marks a header as
// needing a filename prefix.
const DefaultToken = "contig"

// Rewriter rewrites FASTA header lines that start with a placeholder
// token. Everything else passes through byte-identical.
type Rewriter struct {
	Token string // "" means DefaultToken
}

func (rw Rewriter) token() string {
	if rw.Token == "" {
		return DefaultToken
	}
	return rw.Token
}

// Rewrite streams r to w. A header line (first byte '>') whose text,
// after the marker and any leading whitespace, starts with the token
// case-insensitively becomes ">" + stem + "_" + text. The stripped
// leading whitespace is not restored, matching the rewrite's purpose of
// producing clean headers. Reports whether any line was rewritten.
func (rw Rewriter) Rewrite(r io.Reader, w io.Writer, stem string) (bool, error) {
	token := strings.ToLower(rw.token())
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	fixed := false

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			out := line
			if line[0] == '>' {
				rest := strings.TrimLeft(line[1:], " \t")
				if strings.HasPrefix(strings.ToLower(rest), token) {
					out = ">" + stem + "_" + rest
					fixed = true
				}
			}
			if _, werr := bw.WriteString(out); werr != nil {
				return fixed, werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fixed, err
		}
	}
	return fixed, bw.Flush()
}
