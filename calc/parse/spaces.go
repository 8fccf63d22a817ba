package parse

type (
	Spaces uint64
)

var SpaceAll = NewSpaces(' ', '\t', '\r', '\n', '\v', '\f')

func NewSpaces(skip ...byte) (ss Spaces) {
	for _, q := range skip {
		if q >= 64 {
			panic("too high char code")
		}

		ss |= 1 << q
	}

	return
}

func (s Spaces) Is(c byte) bool {
	return c < 64 && s&(1<<c) != 0
}

func (s Spaces) Skip(b []byte, st int) (i int) {
	i = st

	for i < len(b) && s.Is(b[i]) {
		i++
	}

	return
}

// Strip returns b with all the spaces removed.
// The grammar doesn't skip spaces itself, input is expected to be stripped first.
func (s Spaces) Strip(b []byte) []byte {
	res := make([]byte, 0, len(b))

	for _, c := range b {
		if !s.Is(c) {
			res = append(res, c)
		}
	}

	return res
}
