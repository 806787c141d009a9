// Package classic provides classical ciphers behind a uniform byte contract.
package classic

import (
	"strconv"
	"strings"
)

// Planet selects one of the seven classical planetary magic squares.
type Planet int

const (
	Saturn  Planet = iota // 3x3
	Jupiter               // 4x4
	Mars                  // 5x5
	Sun                   // 6x6
	Venus                 // 7x7
	Mercury               // 8x8
	Moon                  // 9x9
)

var planetNames = [...]string{"saturn", "jupiter", "mars", "sun", "venus", "mercury", "moon"}

// Planets returns every planet from smallest to largest square.
func Planets() []Planet {
	return []Planet{Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon}
}

// ParsePlanet converts a case-insensitive planet name into a Planet.
func ParsePlanet(name string) (Planet, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, pn := range planetNames {
		if pn == n {
			return Planet(i), nil
		}
	}
	return 0, ErrUnknownPlanet.WithDetails(name)
}

// String returns the lower-case planet name.
func (p Planet) String() string {
	if p < Saturn || p > Moon {
		return "planet(" + strconv.Itoa(int(p)) + ")"
	}
	return planetNames[p]
}

// Size returns the side length of the planet's square.
func (p Planet) Size() int {
	return int(p) + 3
}

// MagicConstant returns the sum of every row, column and diagonal: n(n²+1)/2.
func (p Planet) MagicConstant() int {
	n := p.Size()
	return n * (n*n + 1) / 2
}

// square returns the planet's square. Callers must not modify it.
func (p Planet) square() [][]int {
	return planetSquares[p]
}

var planetSquares = map[Planet][][]int{
	Saturn: {
		{2, 7, 6},
		{9, 5, 1},
		{4, 3, 8},
	},
	Jupiter: {
		{4, 14, 15, 1},
		{9, 7, 6, 12},
		{5, 11, 10, 8},
		{16, 2, 3, 13},
	},
	Mars: {
		{11, 24, 7, 20, 3},
		{4, 12, 25, 8, 16},
		{17, 5, 13, 21, 9},
		{10, 18, 1, 14, 22},
		{23, 6, 19, 2, 15},
	},
	Sun: {
		{6, 32, 3, 34, 35, 1},
		{7, 11, 27, 28, 8, 30},
		{19, 14, 16, 15, 23, 24},
		{18, 20, 22, 21, 17, 13},
		{25, 29, 10, 9, 26, 12},
		{36, 5, 33, 4, 2, 31},
	},
	Venus: {
		{22, 47, 16, 41, 10, 35, 4},
		{5, 23, 48, 17, 42, 11, 29},
		{30, 6, 24, 49, 18, 36, 12},
		{13, 31, 7, 25, 43, 19, 37},
		{38, 14, 32, 1, 26, 44, 20},
		{21, 39, 8, 33, 2, 27, 45},
		{46, 15, 40, 9, 34, 3, 28},
	},
	Mercury: {
		{8, 58, 59, 5, 4, 62, 63, 1},
		{49, 15, 14, 52, 53, 11, 10, 56},
		{41, 23, 22, 44, 45, 19, 18, 48},
		{32, 34, 35, 29, 28, 38, 39, 25},
		{40, 26, 27, 37, 36, 30, 31, 33},
		{17, 47, 46, 20, 21, 43, 42, 24},
		{9, 55, 54, 12, 13, 51, 50, 16},
		{64, 2, 3, 61, 60, 6, 7, 57},
	},
	Moon: {
		{37, 78, 29, 70, 21, 62, 13, 54, 5},
		{6, 38, 79, 30, 71, 22, 63, 14, 46},
		{47, 7, 39, 80, 31, 72, 23, 55, 15},
		{16, 48, 8, 40, 81, 32, 64, 24, 56},
		{57, 17, 49, 9, 41, 73, 33, 65, 25},
		{26, 58, 18, 50, 1, 42, 74, 34, 66},
		{67, 27, 59, 10, 51, 2, 43, 75, 35},
		{36, 68, 19, 60, 11, 52, 3, 44, 76},
		{77, 28, 69, 20, 61, 12, 53, 4, 45},
	},
}

// Default separators for MagicSquare output.
const (
	DefaultPairSeparator  = " "
	DefaultCoordSeparator = ","
)

// MagicSquare encodes each letter by the position of its value (A=1 ...
// Z=26) inside a planetary magic square, written as "row,col" (1-based).
//
// Letters whose value exceeds the square (e.g. J-Z on Saturn) and all
// non-letters pass through. Decryption yields upper-case letters; mixed
// text with spaces or punctuation is not guaranteed to round-trip because
// the pair separator is itself plain text.
type MagicSquare struct {
	planet         Planet
	positions      []int // value -> row*n+col, index 0 unused
	separator      string
	coordSeparator string
}

// NewMagicSquare creates a magic square cipher for the planet, which must
// be one of the Planet constants.
func NewMagicSquare(p Planet) *MagicSquare {
	sq := p.square()
	n := p.Size()
	positions := make([]int, n*n+1)
	for row := range sq {
		for col, v := range sq[row] {
			positions[v] = row*n + col
		}
	}

	return &MagicSquare{
		planet:         p,
		positions:      positions,
		separator:      DefaultPairSeparator,
		coordSeparator: DefaultCoordSeparator,
	}
}

// WithSeparator returns a copy that writes sep between coordinate pairs.
func (m *MagicSquare) WithSeparator(sep string) *MagicSquare {
	cp := *m
	cp.separator = sep
	return &cp
}

// WithCoordSeparator returns a copy that writes sep between row and column.
func (m *MagicSquare) WithCoordSeparator(sep string) *MagicSquare {
	cp := *m
	cp.coordSeparator = sep
	return &cp
}

// Type returns the cipher type.
func (m *MagicSquare) Type() CipherType {
	return CipherMagicSquare
}

// Planet returns the planet whose square is used.
func (m *MagicSquare) Planet() Planet {
	return m.planet
}

// MaxValue returns the largest letter value the square can encode.
func (m *MagicSquare) MaxValue() int {
	n := m.planet.Size()
	return n * n
}

// Encrypt replaces each encodable letter with its coordinate.
func (m *MagicSquare) Encrypt(plaintext []byte) []byte {
	n := m.planet.Size()
	var sb strings.Builder
	sb.Grow(len(plaintext) * 4)

	prevPair := false
	for _, c := range plaintext {
		value := 0
		if isLetter(c) {
			value = int(toUpper(c)-'A') + 1
		}
		if value == 0 || value > m.MaxValue() {
			sb.WriteByte(c)
			prevPair = false
			continue
		}

		if prevPair {
			sb.WriteString(m.separator)
		}
		pos := m.positions[value]
		sb.WriteString(strconv.Itoa(pos/n + 1))
		sb.WriteString(m.coordSeparator)
		sb.WriteString(strconv.Itoa(pos%n + 1))
		prevPair = true
	}
	return []byte(sb.String())
}

// Decrypt splits ciphertext on the pair separator and turns every
// in-range "row,col" part back into its letter. Other parts are kept
// verbatim (the separators between them are not restored).
func (m *MagicSquare) Decrypt(ciphertext []byte) []byte {
	var sb strings.Builder
	sb.Grow(len(ciphertext))

	for _, part := range strings.Split(string(ciphertext), m.separator) {
		if letter, ok := m.decodePart(part); ok {
			sb.WriteByte(letter)
			continue
		}
		sb.WriteString(part)
	}
	return []byte(sb.String())
}

// EncryptString encrypts a string.
func (m *MagicSquare) EncryptString(plaintext string) string {
	return string(m.Encrypt([]byte(plaintext)))
}

// DecryptString decrypts a string.
func (m *MagicSquare) DecryptString(ciphertext string) string {
	return string(m.Decrypt([]byte(ciphertext)))
}

func (m *MagicSquare) decodePart(part string) (byte, bool) {
	if m.coordSeparator == "" {
		return 0, false
	}
	coords := strings.Split(part, m.coordSeparator)
	if len(coords) != 2 {
		return 0, false
	}

	row, err := strconv.Atoi(coords[0])
	if err != nil {
		return 0, false
	}
	col, err := strconv.Atoi(coords[1])
	if err != nil {
		return 0, false
	}

	n := m.planet.Size()
	if row < 1 || row > n || col < 1 || col > n {
		return 0, false
	}

	value := m.planet.square()[row-1][col-1]
	if value < 1 || value > alphabetSize {
		return 0, false
	}
	return byte('A' + value - 1), true
}
