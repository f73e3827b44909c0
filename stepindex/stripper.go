package stepindex

// StripComments produces a byte-faithful copy of text with line and block
// comments replaced by spaces, preserving every '\n' at its original
// offset and every string literal (plain or raw, including its
// delimiters) verbatim. Downstream line numbering always matches the
// original source because no '\n' is ever consumed or introduced.
func StripComments(text string) string {
	b := []byte(text)
	n := len(b)
	out := make([]byte, n)

	const (
		modeCode = iota
		modeLineComment
		modeBlockComment
		modePlainString
		modeRawString
	)

	mode := modeCode
	rawHashes := 0
	i := 0

	for i < n {
		c := b[i]

		switch mode {
		case modeCode:
			if c == '/' && i+1 < n && b[i+1] == '/' {
				out[i] = ' '
				out[i+1] = ' '
				i += 2
				mode = modeLineComment
				continue
			}
			if c == '/' && i+1 < n && b[i+1] == '*' {
				out[i] = ' '
				out[i+1] = ' '
				i += 2
				mode = modeBlockComment
				continue
			}
			if c == 'r' {
				if hashes, bodyStart, ok := matchRawOpen(b, i); ok {
					for k := i; k < bodyStart; k++ {
						out[k] = b[k]
					}
					i = bodyStart
					mode = modeRawString
					rawHashes = hashes
					continue
				}
			}
			if c == '"' {
				out[i] = c
				i++
				mode = modePlainString
				continue
			}
			out[i] = c
			i++

		case modeLineComment:
			if c == '\n' {
				out[i] = '\n'
				i++
				mode = modeCode
				continue
			}
			out[i] = ' '
			i++

		case modeBlockComment:
			if c == '*' && i+1 < n && b[i+1] == '/' {
				out[i] = ' '
				out[i+1] = ' '
				i += 2
				mode = modeCode
				continue
			}
			if c == '\n' {
				out[i] = '\n'
				i++
				continue
			}
			out[i] = ' '
			i++

		case modePlainString:
			if c == '\\' && i+1 < n {
				out[i] = b[i]
				out[i+1] = b[i+1]
				i += 2
				continue
			}
			out[i] = c
			i++
			if c == '"' {
				mode = modeCode
			}

		case modeRawString:
			if c == '"' && matchRawClose(b, i, rawHashes) {
				for k := 0; k <= rawHashes; k++ {
					out[i+k] = b[i+k]
				}
				i += 1 + rawHashes
				mode = modeCode
				continue
			}
			out[i] = c
			i++
		}
	}

	return string(out)
}

// matchRawOpen reports whether b[i:] begins a raw-string opener
// (r followed by zero or more '#' then '"'), returning the hash count and
// the offset of the first byte of the literal's body (just past the
// opening quote).
func matchRawOpen(b []byte, i int) (hashes int, bodyStart int, ok bool) {
	n := len(b)
	j := i + 1
	h := 0
	for j < n && b[j] == '#' {
		h++
		j++
	}
	if j < n && b[j] == '"' {
		return h, j + 1, true
	}
	return 0, 0, false
}

// matchRawClose reports whether b[i] == '"' is followed by exactly
// `hashes` '#' characters, i.e. it is the raw string's closing delimiter.
func matchRawClose(b []byte, i, hashes int) bool {
	n := len(b)
	for h := 0; h < hashes; h++ {
		if i+1+h >= n || b[i+1+h] != '#' {
			return false
		}
	}
	return true
}
