package puzzle

import (
	"io"
	"math"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// boardFile is the grammar of a board file: whitespace-separated integers in
// row-major order. Lines starting with '#' are comments.
type boardFile struct {
	Cells []int `parser:"@Int*"`
}

var boardLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var boardParser = participle.MustBuild[boardFile](
	participle.Lexer(boardLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a board from r. The width is the square root of the number of
// cells, which must be a square between MinWidth² and MaxWidth². name is used
// in error messages.
func Parse(name string, r io.Reader) (Board, int, error) {
	ast, err := boardParser.Parse(name, r)
	if err != nil {
		return Board{}, 0, errors.Wrapf(err, "parse board %s", name)
	}

	return fromAST(name, ast)
}

// ParseString is Parse on an in-memory text.
func ParseString(text string) (Board, int, error) {
	ast, err := boardParser.ParseString("", text)
	if err != nil {
		return Board{}, 0, errors.Wrap(err, "parse board")
	}

	return fromAST("", ast)
}

func fromAST(name string, ast *boardFile) (Board, int, error) {
	n := len(ast.Cells)
	width := int(math.Sqrt(float64(n)))
	if width*width != n || width < MinWidth || width > MaxWidth {
		return Board{}, 0, errors.Wrapf(ErrBadBoard, "%s: %d cells is not a supported square board", name, n)
	}

	cells := make([]uint8, n)
	for i, v := range ast.Cells {
		if v < 0 || v >= n {
			return Board{}, 0, errors.Wrapf(ErrBadBoard, "%s: value %d at cell %d out of range", name, v, i)
		}
		cells[i] = uint8(v)
	}
	b, err := FromCells(width, cells)
	if err != nil {
		return Board{}, 0, errors.Wrap(err, name)
	}

	return b, width, nil
}
